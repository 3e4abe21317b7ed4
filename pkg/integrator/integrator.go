package integrator

import (
	"github.com/vini-fda/luz/pkg/core"
	"github.com/vini-fda/luz/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving at the ray origin from the ray direction
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Color
}
