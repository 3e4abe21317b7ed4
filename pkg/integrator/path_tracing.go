package integrator

import (
	"github.com/vini-fda/luz/pkg/core"
	"github.com/vini-fda/luz/pkg/material"
	"github.com/vini-fda/luz/pkg/scene"
)

// PathTracingIntegrator follows a single random path per ray until it reaches
// an emitter, escapes the scene or exceeds MaxDepth
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor traces a camera ray from depth 0
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Color {
	return pt.Trace(ray, scene, sampler, 0)
}

// Trace returns the radiance carried back along ray by one sampled path
func (pt *PathTracingIntegrator) Trace(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Color {
	if depth >= pt.MaxDepth {
		return core.Black()
	}

	entity, hit, ok := scene.IntersectClosest(ray)
	if !ok {
		return core.Black()
	}

	var color core.Color
	result := entity.Material.Sample(ray.Direction, hit.Normal, sampler)
	switch result.Kind {
	case material.Edge:
		next := core.NewRay(hit.Point, result.Direction)
		color = pt.Trace(next, scene, sampler, depth+1).Multiply(result.Weight)
	case material.Node:
		color = result.Color
	}

	// Beer-Lambert over the segment that reached this surface
	if entity.Material.Type == material.Dielectric {
		distance := hit.Point.Subtract(ray.Origin).Length()
		color = color.MultiplyColor(entity.Material.Absorptivity.Transmittance(distance))
	}

	return color
}
