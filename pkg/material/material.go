package material

import (
	"errors"
	"fmt"

	"github.com/vini-fda/luz/pkg/core"
)

// Type selects the scattering behavior of a Material
type Type int

const (
	Lambert Type = iota // perfectly diffuse
	Dielectric
	Mirror
	Emissive
	DirectionalEmissive
)

func (t Type) String() string {
	switch t {
	case Lambert:
		return "lambert"
	case Dielectric:
		return "dielectric"
	case Mirror:
		return "mirror"
	case Emissive:
		return "emissive"
	case DirectionalEmissive:
		return "directional-emissive"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType parses the name produced by Type.String
func ParseType(name string) (Type, error) {
	for t := Lambert; t <= DirectionalEmissive; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
}

// Material is a flat record shared by every material type. Fields a type does
// not use are ignored.
type Material struct {
	Type         Type
	Absorptivity core.Color // Beer-Lambert extinction coefficients, dielectric only
	Eta          float64    // Relative refractive index in [1, ∞), dielectric only
	Emissivity   core.Color // Emitted radiance, emissive types only
}

// NewLambert creates a perfectly diffuse material
func NewLambert() Material {
	return Material{Type: Lambert}
}

// NewMirror creates a perfect specular reflector
func NewMirror() Material {
	return Material{Type: Mirror}
}

// NewDielectric creates a refractive material with the given relative index
// and extinction coefficients
func NewDielectric(eta float64, absorptivity core.Color) Material {
	return Material{Type: Dielectric, Eta: eta, Absorptivity: absorptivity}
}

// NewEmissive creates a light source radiating emissivity in all directions
func NewEmissive(emissivity core.Color) Material {
	return Material{Type: Emissive, Emissivity: emissivity}
}

// NewDirectionalEmissive creates a light source visible only along its normal
func NewDirectionalEmissive(emissivity core.Color) Material {
	return Material{Type: DirectionalEmissive, Emissivity: emissivity}
}

var (
	ErrInvalidEta      = errors.New("refractive index must be at least 1")
	ErrNegativeColor   = errors.New("color components must be non-negative")
	ErrUnknownMaterial = errors.New("unknown material type")
)

// Validate checks the fields used by the material's type
func (m Material) Validate() error {
	switch m.Type {
	case Lambert, Mirror:
		return nil
	case Dielectric:
		if !(m.Eta >= 1) {
			return fmt.Errorf("%w: got %v", ErrInvalidEta, m.Eta)
		}
		if !nonNegative(m.Absorptivity) {
			return fmt.Errorf("absorptivity: %w", ErrNegativeColor)
		}
		return nil
	case Emissive, DirectionalEmissive:
		if !nonNegative(m.Emissivity) {
			return fmt.Errorf("emissivity: %w", ErrNegativeColor)
		}
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMaterial, int(m.Type))
	}
}

func nonNegative(c core.Color) bool {
	return c.R >= 0 && c.G >= 0 && c.B >= 0
}

// SampleKind distinguishes continuing from terminal sample results
type SampleKind int

const (
	Edge SampleKind = iota // path continues along Direction, scaled by Weight
	Node                   // path ends with radiance Color
)

// SampleResult is the outcome of one scattering event
type SampleResult struct {
	Kind      SampleKind
	Direction core.Vec2  // Outgoing unit direction, Edge only
	Weight    float64    // Multiplier on the continuation radiance, Edge only
	Color     core.Color // Terminal radiance, Node only
}

// NewEdge returns a continuing sample result
func NewEdge(direction core.Vec2, weight float64) SampleResult {
	return SampleResult{Kind: Edge, Direction: direction, Weight: weight}
}

// NewNode returns a terminal sample result
func NewNode(color core.Color) SampleResult {
	return SampleResult{Kind: Node, Color: color}
}

// Sample scatters a ray arriving along wi (unit, direction of travel) at a
// surface with outward unit normal n
func (m Material) Sample(wi, n core.Vec2, sampler core.Sampler) SampleResult {
	switch m.Type {
	case Lambert:
		return sampleLambert(wi, n, sampler)
	case Dielectric:
		return NewEdge(sampleDielectric(wi, n, m.Eta, sampler), 1.0)
	case Mirror:
		return NewEdge(reflectMirror(wi, n), 1.0)
	case Emissive:
		return NewNode(m.Emissivity)
	case DirectionalEmissive:
		return sampleDirectionalEmissive(wi, n, m.Emissivity)
	default:
		return NewNode(core.Black())
	}
}

// toLocal expresses v in the (tangent, normal) frame of n
func toLocal(v, n core.Vec2) core.Vec2 {
	t := n.Tangent()
	return core.NewVec2(t.Dot(v), n.Dot(v))
}

// fromLocal maps a local (tangent, normal) vector back to world space
func fromLocal(v, n core.Vec2) core.Vec2 {
	t := n.Tangent()
	return t.Multiply(v.X).Add(n.Multiply(v.Y)).Normalize()
}
