package material

import (
	"github.com/vini-fda/luz/pkg/core"
)

// sampleLambert draws a diffuse direction on the outward side of n. A ray
// reaching the surface from behind its normal is absorbed.
func sampleLambert(wi, n core.Vec2, sampler core.Sampler) SampleResult {
	if wi.Dot(n) >= 0 {
		return NewNode(core.Black())
	}
	wo := core.SampleDiffuseLocal(sampler.Get1D())
	return NewEdge(fromLocal(wo, n), 1.0)
}
