package geometry

import (
	"errors"

	"github.com/vini-fda/luz/pkg/core"
)

// Epsilon is the minimum ray parameter accepted as a hit. It suppresses
// self-intersection at the surface a continuation ray starts from.
const Epsilon = 1e-6

var (
	// ErrTooFewPoints is returned when a polygon has fewer than two vertices
	ErrTooFewPoints = errors.New("polygon needs at least 2 points")
	// ErrInvalidRadius is returned when a circle radius is not positive
	ErrInvalidRadius = errors.New("circle radius must be positive")
)

// Intersection is the first surface contact along a ray
type Intersection struct {
	Point  core.Vec2 // Point of intersection
	Normal core.Vec2 // Unit normal pointing out of the shape interior
}

// Kind identifies the variant held by a Shape
type Kind int

const (
	KindEmpty Kind = iota
	KindCircle
	KindPolygon
	KindUnion
	KindIntersection
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	case KindUnion:
		return "union"
	case KindIntersection:
		return "intersection"
	default:
		return "empty"
	}
}

// Shape is a closed variant over the primitives and their boolean
// combinations. The zero Shape is empty: it is never hit and contains nothing.
type Shape struct {
	kind    Kind
	circle  Circle
	polygon Polygon
	a, b    *Shape
}

// FromCircle wraps a circle as a Shape
func FromCircle(c Circle) Shape {
	return Shape{kind: KindCircle, circle: c}
}

// FromPolygon wraps a polygon as a Shape
func FromPolygon(p Polygon) Shape {
	return Shape{kind: KindPolygon, polygon: p}
}

// NewUnion returns the union of two shapes
func NewUnion(a, b Shape) Shape {
	return Shape{kind: KindUnion, a: &a, b: &b}
}

// NewIntersection returns the intersection of two shapes
func NewIntersection(a, b Shape) Shape {
	return Shape{kind: KindIntersection, a: &a, b: &b}
}

// Kind returns the variant held by the shape
func (s Shape) Kind() Kind {
	return s.kind
}

// Circle returns the circle held by a circle shape
func (s Shape) Circle() (Circle, bool) {
	return s.circle, s.kind == KindCircle
}

// Polygon returns the polygon held by a polygon shape
func (s Shape) Polygon() (Polygon, bool) {
	return s.polygon, s.kind == KindPolygon
}

// Operands returns the two operands of a union or intersection
func (s Shape) Operands() (Shape, Shape, bool) {
	if s.kind != KindUnion && s.kind != KindIntersection {
		return Shape{}, Shape{}, false
	}
	return *s.a, *s.b, true
}

// Intersect returns the first boundary point hit by the ray, if any
func (s Shape) Intersect(ray core.Ray) (Intersection, bool) {
	switch s.kind {
	case KindCircle:
		return s.circle.Intersect(ray)
	case KindPolygon:
		return s.polygon.Intersect(ray)
	case KindUnion:
		return unionIntersect(*s.a, *s.b, ray)
	case KindIntersection:
		return intersectionIntersect(*s.a, *s.b, ray)
	default:
		return Intersection{}, false
	}
}

// IsInside reports whether p lies strictly inside the shape
func (s Shape) IsInside(p core.Vec2) bool {
	switch s.kind {
	case KindCircle:
		return s.circle.IsInside(p)
	case KindPolygon:
		return s.polygon.IsInside(p)
	case KindUnion:
		return s.a.IsInside(p) || s.b.IsInside(p)
	case KindIntersection:
		return s.a.IsInside(p) && s.b.IsInside(p)
	default:
		return false
	}
}

// Walk calls fn for every primitive (circle or polygon) in the shape tree,
// left operand first.
func (s Shape) Walk(fn func(Shape)) {
	switch s.kind {
	case KindCircle, KindPolygon:
		fn(s)
	case KindUnion, KindIntersection:
		s.a.Walk(fn)
		s.b.Walk(fn)
	}
}

// nearer returns whichever intersection is closer to origin. Equidistant hits
// resolve to i2, the right operand.
func nearer(origin core.Vec2, i1, i2 Intersection) Intersection {
	if origin.DistanceSquared(i1.Point) < origin.DistanceSquared(i2.Point) {
		return i1
	}
	return i2
}
