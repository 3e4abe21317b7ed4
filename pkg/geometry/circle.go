package geometry

import (
	"math"

	"github.com/vini-fda/luz/pkg/core"
)

// Circle represents a disc in the plane
type Circle struct {
	Center core.Vec2
	Radius float64
}

// NewCircle creates a new circle
func NewCircle(center core.Vec2, radius float64) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, ErrInvalidRadius
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Intersect tests if a ray crosses the circle boundary.
// Of the two roots the far one is used, so a ray starting outside reports the
// exit point on the opposite side and a ray starting inside reports where it
// leaves the disc.
func (c Circle) Intersect(ray core.Ray) (Intersection, bool) {
	// Vector from circle center to ray origin
	oc := ray.Origin.Subtract(c.Center)

	// Quadratic t² + bt + c = 0 for a unit direction
	b := 2.0 * ray.Direction.Dot(oc)
	cc := oc.LengthSquared() - c.Radius*c.Radius

	discriminant := b*b - 4.0*cc
	if discriminant < 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t := math.Max((-b-sqrtD)/2.0, (-b+sqrtD)/2.0)
	if t <= Epsilon {
		return Intersection{}, false
	}

	point := ray.At(t)
	return Intersection{
		Point:  point,
		Normal: point.Subtract(c.Center).Normalize(),
	}, true
}

// IsInside reports whether p lies strictly inside the circle
func (c Circle) IsInside(p core.Vec2) bool {
	return p.DistanceSquared(c.Center) < c.Radius*c.Radius
}
