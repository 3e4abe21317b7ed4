package geometry

import "github.com/vini-fda/luz/pkg/core"

// unionIntersect returns the nearer of the two operand hits. The boundary of a
// union is whichever surface the ray meets first.
func unionIntersect(a, b Shape, ray core.Ray) (Intersection, bool) {
	i1, hit1 := a.Intersect(ray)
	i2, hit2 := b.Intersect(ray)

	switch {
	case hit1 && hit2:
		return nearer(ray.Origin, i1, i2), true
	case hit1:
		return i1, true
	case hit2:
		return i2, true
	default:
		return Intersection{}, false
	}
}

// intersectionIntersect keeps only hits on one operand's boundary that lie
// inside the other operand
func intersectionIntersect(a, b Shape, ray core.Ray) (Intersection, bool) {
	i1, hit1 := a.Intersect(ray)
	i2, hit2 := b.Intersect(ray)

	valid1 := hit1 && b.IsInside(i1.Point)
	valid2 := hit2 && a.IsInside(i2.Point)

	switch {
	case valid1 && valid2:
		return nearer(ray.Origin, i1, i2), true
	case valid1:
		return i1, true
	case valid2:
		return i2, true
	default:
		return Intersection{}, false
	}
}
