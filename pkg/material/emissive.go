package material

import "github.com/vini-fda/luz/pkg/core"

// directionalCosine is how closely a ray must oppose the normal to see a
// directional emitter
const directionalCosine = -0.9999

// sampleDirectionalEmissive returns the emission only for rays arriving almost
// exactly against the surface normal
func sampleDirectionalEmissive(wi, n core.Vec2, emissivity core.Color) SampleResult {
	if wi.Dot(n) < directionalCosine {
		return NewNode(emissivity)
	}
	return NewNode(core.Black())
}
