package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own source seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// StratifiedAngle returns the angle of sample i out of n, jittered by u in [0, 1)
// within its stratum: 2π(i+u)/n.
func StratifiedAngle(i, n int, u float64) float64 {
	return 2.0 * math.Pi * (float64(i) + u) / float64(n)
}

// SampleDiffuseLocal returns a direction in the local (tangent, normal) frame
// on the outward half circle. sin(θ) = 2u-1 is uniform, so the density of θ is
// proportional to cos(θ): the 2D analog of cosine-weighted hemisphere sampling.
func SampleDiffuseLocal(u float64) Vec2 {
	sinTheta := 2.0*u - 1.0
	cosTheta := math.Sqrt(math.Max(0, 1.0-sinTheta*sinTheta))
	return Vec2{X: sinTheta, Y: cosTheta}
}
