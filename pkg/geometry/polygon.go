package geometry

import (
	"math"
	"slices"

	"github.com/vini-fda/luz/pkg/core"
)

// Polygon is a convex polygon whose interior lies to the right of every
// directed edge (points[i] -> points[i+1]). With the y axis pointing down, as
// in image coordinates, this is counter-clockwise winding.
type Polygon struct {
	Points []core.Vec2
}

// NewPolygon creates a polygon from its vertices. Vertices given in the
// opposite winding are reversed so IsInside holds for convex input.
func NewPolygon(points []core.Vec2) (Polygon, error) {
	if len(points) < 2 {
		return Polygon{}, ErrTooFewPoints
	}
	pts := slices.Clone(points)
	if signedArea(pts) > 0 {
		slices.Reverse(pts)
	}
	return Polygon{Points: pts}, nil
}

// NewRectangle creates a w×h rectangle centered at center and rotated by theta radians
func NewRectangle(center core.Vec2, theta, w, h float64) (Polygon, error) {
	corners := []core.Vec2{
		core.NewVec2(w/2, -h/2),
		core.NewVec2(-w/2, -h/2),
		core.NewVec2(-w/2, h/2),
		core.NewVec2(w/2, h/2),
	}
	for i, c := range corners {
		corners[i] = center.Add(c.Rotate(theta))
	}
	return NewPolygon(corners)
}

// NewNgon creates a regular polygon with n vertices on a circle of radius r
func NewNgon(center core.Vec2, r float64, n int) (Polygon, error) {
	points := make([]core.Vec2, 0, max(n, 0))
	for i := 0; i < n; i++ {
		theta := float64(i) * 2.0 * math.Pi / float64(n)
		points = append(points, center.Add(core.NewVec2(r*math.Cos(theta), -r*math.Sin(theta))))
	}
	return NewPolygon(points)
}

// edge returns the i-th directed edge, wrapping around to the first vertex
func (p Polygon) edge(i int) (core.Vec2, core.Vec2) {
	a := p.Points[i]
	b := p.Points[(i+1)%len(p.Points)]
	return a, b
}

// Intersect tests the ray against every edge and returns the hit nearest to
// the ray origin
func (p Polygon) Intersect(ray core.Ray) (Intersection, bool) {
	var best Intersection
	found := false
	d := ray.Direction

	for i := range p.Points {
		a, b := p.edge(i)
		va := a.Subtract(ray.Origin)
		vb := b.Subtract(ray.Origin)

		// The ray's line must separate the two endpoints
		if va.Cross(d)*vb.Cross(d) >= 0 {
			continue
		}

		normal := core.NewVec2(va.Y-vb.Y, vb.X-va.X).Normalize()
		denominator := d.Dot(normal)
		if math.Abs(denominator) <= Epsilon {
			continue
		}

		t := normal.Dot(va) / denominator
		if t <= Epsilon {
			continue
		}

		hit := Intersection{Point: ray.At(t), Normal: normal}
		if !found {
			best, found = hit, true
		} else {
			best = nearer(ray.Origin, best, hit)
		}
	}

	return best, found
}

// IsInside reports whether q lies strictly to the right of every edge
func (p Polygon) IsInside(q core.Vec2) bool {
	for i := range p.Points {
		a, b := p.edge(i)
		if b.Subtract(a).Cross(q.Subtract(a)) >= 0 {
			return false
		}
	}
	return true
}

// signedArea is the shoelace sum; positive when the interior lies to the left
// of the edges
func signedArea(points []core.Vec2) float64 {
	area := 0.0
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		area += a.Cross(b)
	}
	return area / 2
}
