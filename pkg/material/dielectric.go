package material

import (
	"math"

	"github.com/vini-fda/luz/pkg/core"
)

// sampleDielectric chooses between reflection and refraction at an interface
// with relative refractive index eta. Work happens in the local frame where
// the surface normal is +Y.
func sampleDielectric(wi, n core.Vec2, eta float64, sampler core.Sampler) core.Vec2 {
	w := toLocal(wi, n)

	// Entering from the outside (w.Y < 0) uses n1/n2 = 1/eta; leaving uses eta.
	// The local normal is flipped to face the incoming ray.
	refractionRatio := 1.0 / eta
	normal := core.NewVec2(0, 1)
	if w.Y > 0 {
		refractionRatio = eta
		normal = core.NewVec2(0, -1)
	}

	cosI := -w.Dot(normal)
	k := 1.0 - refractionRatio*refractionRatio*(1.0-cosI*cosI)

	var wo core.Vec2
	if k < 0 {
		// Total internal reflection
		wo = reflectLocal(w)
	} else {
		cosT := math.Sqrt(k)
		if sampler.Get1D() < Reflectance(cosI, cosT, refractionRatio) {
			wo = reflectLocal(w)
		} else {
			wo = refract(w, normal, refractionRatio, cosT)
		}
	}

	return fromLocal(wo, n)
}

// reflectLocal mirrors a local direction about the tangent axis
func reflectLocal(w core.Vec2) core.Vec2 {
	return core.NewVec2(w.X, -w.Y)
}

// refract applies the vector form of Snell's law:
// wo = η·w - (η·(n·w) + cosT)·n, where n faces the incoming ray
func refract(w, n core.Vec2, refractionRatio, cosT float64) core.Vec2 {
	a := refractionRatio*n.Dot(w) + cosT
	return w.Multiply(refractionRatio).Subtract(n.Multiply(a)).Normalize()
}

// Reflectance returns the unpolarized Fresnel reflectance for incident and
// transmitted cosines cosI, cosT and refraction ratio n1/n2
func Reflectance(cosI, cosT, refractionRatio float64) float64 {
	rsDen := refractionRatio*cosI + cosT
	rpDen := refractionRatio*cosT + cosI
	if rsDen == 0 || rpDen == 0 {
		return 1.0
	}
	rs := (refractionRatio*cosI - cosT) / rsDen
	rp := (refractionRatio*cosT - cosI) / rpDen
	return 0.5 * (rs*rs + rp*rp)
}
