package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vini-fda/luz/pkg/core"
)

// constantSampler always returns the same value
type constantSampler float64

func (c constantSampler) Get1D() float64 { return float64(c) }

func assertVecInDelta(t *testing.T, expected, actual core.Vec2, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, "X of %v vs %v", expected, actual)
	assert.InDelta(t, expected.Y, actual.Y, delta, "Y of %v vs %v", expected, actual)
}

func TestMaterialTypeNames(t *testing.T) {
	for _, typ := range []Type{Lambert, Dielectric, Mirror, Emissive, DirectionalEmissive} {
		parsed, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}

	_, err := ParseType("velvet")
	assert.ErrorIs(t, err, ErrUnknownMaterial)
}

func TestMaterialValidate(t *testing.T) {
	tests := []struct {
		name     string
		material Material
		wantErr  error
	}{
		{"lambert", NewLambert(), nil},
		{"mirror", NewMirror(), nil},
		{"glass", NewDielectric(1.5, core.Gray(0.1)), nil},
		{"unit index", NewDielectric(1.0, core.Black()), nil},
		{"index below one", NewDielectric(0.9, core.Black()), ErrInvalidEta},
		{"negative absorptivity", NewDielectric(1.5, core.NewColor(0, -1, 0)), ErrNegativeColor},
		{"light", NewEmissive(core.Gray(5)), nil},
		{"negative emission", NewDirectionalEmissive(core.NewColor(-1, 0, 0)), ErrNegativeColor},
		{"unknown type", Material{Type: Type(42)}, ErrUnknownMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.material.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLocalFrameRoundTrip(t *testing.T) {
	n := core.NewVec2(1, 1).Normalize()
	v := core.NewVec2(0.3, -0.7).Normalize()
	assertVecInDelta(t, v, fromLocal(toLocal(v, n), n), 1e-12)

	// The normal itself is +Y locally
	assertVecInDelta(t, core.NewVec2(0, 1), toLocal(n, n), 1e-12)
}

func TestLambertSampling(t *testing.T) {
	m := NewLambert()
	n := core.NewVec2(0, 1)
	wi := core.NewVec2(1, -1).Normalize()
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		result := m.Sample(wi, n, sampler)
		require.Equal(t, Edge, result.Kind)
		assert.Equal(t, 1.0, result.Weight)
		assert.InDelta(t, 1.0, result.Direction.Length(), 1e-9)
		assert.GreaterOrEqual(t, result.Direction.Dot(n), -1e-12, "diffuse sample must leave on the normal side")
	}
}

func TestLambertBackFaceIsBlack(t *testing.T) {
	m := NewLambert()
	n := core.NewVec2(0, 1)

	for _, wi := range []core.Vec2{core.NewVec2(0, 1), core.NewVec2(1, 0), core.NewVec2(1, 1).Normalize()} {
		result := m.Sample(wi, n, constantSampler(0.5))
		assert.Equal(t, Node, result.Kind)
		assert.True(t, result.Color.IsBlack())
	}
}

func TestLambertMidSampleFollowsNormal(t *testing.T) {
	n := core.NewVec2(1, 1).Normalize()
	result := NewLambert().Sample(n.Negate(), n, constantSampler(0.5))
	require.Equal(t, Edge, result.Kind)
	assertVecInDelta(t, n, result.Direction, 1e-12)
}

func TestMirrorReflection(t *testing.T) {
	m := NewMirror()
	n := core.NewVec2(0, 1)
	wi := core.NewVec2(1, -1).Normalize()

	result := m.Sample(wi, n, constantSampler(0))
	require.Equal(t, Edge, result.Kind)
	assert.Equal(t, 1.0, result.Weight)
	assertVecInDelta(t, core.NewVec2(1, 1).Normalize(), result.Direction, 1e-12)
}

func TestMirrorDoubleReflectionIsIdentity(t *testing.T) {
	sampler := core.NewSeededSampler(7)
	for i := 0; i < 100; i++ {
		n := core.FromAngle(2 * math.Pi * sampler.Get1D())
		wi := core.FromAngle(2 * math.Pi * sampler.Get1D())

		once := reflectMirror(wi, n)
		assert.InDelta(t, 1.0, once.Length(), 1e-12, "reflection preserves length")
		assertVecInDelta(t, wi, reflectMirror(once, n), 1e-12)
	}
}

func TestEmissiveAlwaysTerminates(t *testing.T) {
	emission := core.NewColor(5, 4, 3)
	m := NewEmissive(emission)
	n := core.NewVec2(0, 1)

	for _, wi := range []core.Vec2{core.NewVec2(0, -1), core.NewVec2(0, 1), core.NewVec2(1, 0)} {
		result := m.Sample(wi, n, constantSampler(0.3))
		assert.Equal(t, Node, result.Kind)
		assert.Equal(t, emission, result.Color)
	}
}

func TestDirectionalEmissive(t *testing.T) {
	emission := core.Gray(2)
	m := NewDirectionalEmissive(emission)
	n := core.NewVec2(0, 1)

	head := m.Sample(core.NewVec2(0, -1), n, constantSampler(0))
	assert.Equal(t, Node, head.Kind)
	assert.Equal(t, emission, head.Color)

	slanted := m.Sample(core.NewVec2(0.1, -1).Normalize(), n, constantSampler(0))
	assert.Equal(t, Node, slanted.Kind)
	assert.True(t, slanted.Color.IsBlack())

	behind := m.Sample(core.NewVec2(0, 1), n, constantSampler(0))
	assert.True(t, behind.Color.IsBlack())
}
