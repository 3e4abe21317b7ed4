package scene

import (
	"math"

	"github.com/vini-fda/luz/pkg/core"
	"github.com/vini-fda/luz/pkg/geometry"
	"github.com/vini-fda/luz/pkg/material"
)

// sceneBuilder collects the first construction error so scene functions can
// read as a flat list of entities
type sceneBuilder struct {
	scene *Scene
	err   error
}

func newSceneBuilder() *sceneBuilder {
	return &sceneBuilder{scene: NewScene()}
}

func (b *sceneBuilder) add(name string, shape geometry.Shape, mat material.Material) {
	if b.err != nil {
		return
	}
	b.err = b.scene.Add(name, shape, mat)
}

func (b *sceneBuilder) circle(center core.Vec2, radius float64) geometry.Shape {
	if b.err != nil {
		return geometry.Shape{}
	}
	c, err := geometry.NewCircle(center, radius)
	if err != nil {
		b.err = err
		return geometry.Shape{}
	}
	return geometry.FromCircle(c)
}

func (b *sceneBuilder) polygon(p geometry.Polygon, err error) geometry.Shape {
	if b.err != nil {
		return geometry.Shape{}
	}
	if err != nil {
		b.err = err
		return geometry.Shape{}
	}
	return geometry.FromPolygon(p)
}

func (b *sceneBuilder) build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.scene, nil
}

// NewDefaultScene creates a scene with a warm light, a glass lens, a mirror
// bar and a diffuse hexagon
func NewDefaultScene() (*Scene, error) {
	b := newSceneBuilder()

	b.add("light", b.circle(core.NewVec2(0.2, 0.2), 0.08), material.NewEmissive(core.NewColor(6, 5.5, 5)))

	lens := geometry.NewIntersection(
		b.circle(core.NewVec2(0.45, 0.5), 0.2),
		b.circle(core.NewVec2(0.65, 0.5), 0.2),
	)
	b.add("lens", lens, material.NewDielectric(1.5, core.NewColor(0.5, 2, 4)))

	b.add("mirror", b.polygon(geometry.NewRectangle(core.NewVec2(0.8, 0.75), 0.4, 0.3, 0.04)), material.NewMirror())
	b.add("hexagon", b.polygon(geometry.NewNgon(core.NewVec2(0.3, 0.75), 0.08, 6)), material.NewLambert())

	return b.build()
}

// NewLensScene creates a biconvex glass lens between a bright light and a
// diffuse screen
func NewLensScene() (*Scene, error) {
	b := newSceneBuilder()

	b.add("light", b.circle(core.NewVec2(0.1, 0.5), 0.05), material.NewEmissive(core.Gray(8)))

	lens := geometry.NewIntersection(
		b.circle(core.NewVec2(0.3, 0.5), 0.25),
		b.circle(core.NewVec2(0.6, 0.5), 0.25),
	)
	b.add("lens", lens, material.NewDielectric(1.6, core.NewColor(0.2, 0.2, 0.1)))
	b.add("screen", b.polygon(geometry.NewRectangle(core.NewVec2(0.9, 0.5), 0, 0.02, 0.8)), material.NewLambert())

	return b.build()
}

// NewPrismScene creates a triangular prism lit by a directional emitter
func NewPrismScene() (*Scene, error) {
	b := newSceneBuilder()

	b.add("beam", b.polygon(geometry.NewRectangle(core.NewVec2(0.05, 0.5), 0, 0.04, 0.3)),
		material.NewDirectionalEmissive(core.NewColor(10, 9, 8)))
	b.add("prism", b.polygon(geometry.NewNgon(core.NewVec2(0.5, 0.5), 0.18, 3)),
		material.NewDielectric(1.8, core.NewColor(0.1, 0.4, 1.2)))

	walls := geometry.NewUnion(
		b.polygon(geometry.NewRectangle(core.NewVec2(0.5, 0.02), 0, 1, 0.04)),
		b.polygon(geometry.NewRectangle(core.NewVec2(0.5, 0.98), 0, 1, 0.04)),
	)
	b.add("walls", walls, material.NewLambert())

	return b.build()
}

// NewEmitterScene creates a single emissive circle with no occluders
func NewEmitterScene() (*Scene, error) {
	b := newSceneBuilder()
	b.add("light", b.circle(core.NewVec2(0.5, 0.5), 0.2), material.NewEmissive(core.Gray(5)))
	return b.build()
}

// NewDarkScene creates diffuse and mirror geometry without any light source
func NewDarkScene() (*Scene, error) {
	b := newSceneBuilder()
	for i := 0; i < 5; i++ {
		theta := float64(i) * 2 * math.Pi / 5
		center := core.NewVec2(0.5, 0.5).Add(core.FromAngle(theta).Multiply(0.3))
		b.add("disc", b.circle(center, 0.08), material.NewLambert())
	}
	b.add("mirror", b.polygon(geometry.NewRectangle(core.NewVec2(0.5, 0.5), 0, 0.1, 0.1)), material.NewMirror())
	return b.build()
}
