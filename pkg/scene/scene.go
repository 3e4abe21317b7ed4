package scene

import (
	"fmt"

	"github.com/vini-fda/luz/pkg/core"
	"github.com/vini-fda/luz/pkg/geometry"
	"github.com/vini-fda/luz/pkg/material"
)

// Entity binds one shape to one material
type Entity struct {
	Name     string
	Shape    geometry.Shape
	Material material.Material
}

// Scene is an ordered list of entities. It is read-only once built and safe
// to share between render workers.
type Scene struct {
	Entities []Entity
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{Entities: make([]Entity, 0)}
}

// Add validates the material and appends a new entity
func (s *Scene) Add(name string, shape geometry.Shape, mat material.Material) error {
	if shape.Kind() == geometry.KindEmpty {
		return fmt.Errorf("entity %q: empty shape", name)
	}
	if err := mat.Validate(); err != nil {
		return fmt.Errorf("entity %q: %w", name, err)
	}
	s.Entities = append(s.Entities, Entity{Name: name, Shape: shape, Material: mat})
	return nil
}

// IntersectClosest returns the entity whose surface the ray meets nearest to
// its origin. Equidistant hits resolve to the entity added first.
func (s *Scene) IntersectClosest(ray core.Ray) (*Entity, geometry.Intersection, bool) {
	var closest *Entity
	var closestHit geometry.Intersection
	closestDist := 0.0

	for i := range s.Entities {
		entity := &s.Entities[i]
		hit, ok := entity.Shape.Intersect(ray)
		if !ok {
			continue
		}
		dist := ray.Origin.DistanceSquared(hit.Point)
		if closest == nil || dist < closestDist {
			closest = entity
			closestHit = hit
			closestDist = dist
		}
	}

	return closest, closestHit, closest != nil
}

// GetPrimitiveCount returns the total number of circles and polygons in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, e := range s.Entities {
		e.Shape.Walk(func(geometry.Shape) { count++ })
	}
	return count
}

// HasEmitters reports whether any entity can terminate a path with radiance
func (s *Scene) HasEmitters() bool {
	for _, e := range s.Entities {
		if e.Material.Type == material.Emissive || e.Material.Type == material.DirectionalEmissive {
			if !e.Material.Emissivity.IsBlack() {
				return true
			}
		}
	}
	return false
}
