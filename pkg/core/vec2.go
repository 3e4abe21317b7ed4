package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 represents a 2D point or displacement
type Vec2 r2.Vec

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2(r2.Add(r2.Vec(v), r2.Vec(other)))
}

// Subtract returns the difference of two vectors
func (v Vec2) Subtract(other Vec2) Vec2 {
	return Vec2(r2.Sub(r2.Vec(v), r2.Vec(other)))
}

// Multiply returns the vector scaled by a scalar
func (v Vec2) Multiply(scalar float64) Vec2 {
	return Vec2(r2.Scale(scalar, r2.Vec(v)))
}

// Dot returns the dot product of two vectors
func (v Vec2) Dot(other Vec2) float64 {
	return r2.Dot(r2.Vec(v), r2.Vec(other))
}

// Cross returns the z component of the 3D cross product of two planar vectors
func (v Vec2) Cross(other Vec2) float64 {
	return r2.Cross(r2.Vec(v), r2.Vec(other))
}

// Length returns the magnitude of the vector
func (v Vec2) Length() float64 {
	return r2.Norm(r2.Vec(v))
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec2) LengthSquared() float64 {
	return r2.Norm2(r2.Vec(v))
}

// DistanceSquared returns the squared distance between two points
func (v Vec2) DistanceSquared(other Vec2) float64 {
	return v.Subtract(other).LengthSquared()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	if v.X == 0 && v.Y == 0 {
		return v
	}
	return Vec2(r2.Unit(r2.Vec(v)))
}

// Negate returns the negative of the vector
func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Tangent returns the normal rotated clockwise by 90 degrees, (v.Y, -v.X).
// Together with v it forms the local (tangent, normal) frame used by materials.
func (v Vec2) Tangent() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// Rotate returns the vector rotated by theta radians about the origin
func (v Vec2) Rotate(theta float64) Vec2 {
	return Vec2(r2.Rotate(r2.Vec(v), theta, r2.Vec{}))
}

// FromAngle returns the unit vector at angle theta from the +X axis
func FromAngle(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{X: cos, Y: sin}
}

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Vec2
	Direction Vec2
}

// NewRay creates a new ray
func NewRay(origin, direction Vec2) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec2 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
