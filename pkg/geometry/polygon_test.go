package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vini-fda/luz/pkg/core"
)

func TestNewPolygon_TooFewPoints(t *testing.T) {
	_, err := NewPolygon(nil)
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = NewPolygon([]core.Vec2{core.NewVec2(0, 0)})
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = NewPolygon([]core.Vec2{core.NewVec2(0, 0), core.NewVec2(1, 0)})
	assert.NoError(t, err)
}

func TestNewPolygon_NormalizesWinding(t *testing.T) {
	// Interior on the left of each edge with y up: the reverse of what IsInside expects
	points := []core.Vec2{
		core.NewVec2(0, 0),
		core.NewVec2(1, 0),
		core.NewVec2(1, 1),
		core.NewVec2(0, 1),
	}
	poly, err := NewPolygon(points)
	require.NoError(t, err)

	assert.True(t, poly.IsInside(core.NewVec2(0.5, 0.5)))
	assert.Equal(t, core.NewVec2(0, 0), points[0], "input slice must not be modified")
}

func TestPolygon_VerticesNotInside(t *testing.T) {
	shapes := map[string]func() (Polygon, error){
		"rectangle": func() (Polygon, error) { return NewRectangle(core.NewVec2(0.5, 0.5), 0.3, 0.4, 0.2) },
		"hexagon":   func() (Polygon, error) { return NewNgon(core.NewVec2(-1, 2), 0.7, 6) },
		"triangle":  func() (Polygon, error) { return NewNgon(core.NewVec2(0, 0), 1, 3) },
	}

	for name, build := range shapes {
		t.Run(name, func(t *testing.T) {
			poly, err := build()
			require.NoError(t, err)

			for _, v := range poly.Points {
				assert.False(t, poly.IsInside(v), "vertex %v must not be strictly inside", v)
			}

			// The centroid is inside
			centroid := core.NewVec2(0, 0)
			for _, v := range poly.Points {
				centroid = centroid.Add(v)
			}
			centroid = centroid.Multiply(1 / float64(len(poly.Points)))
			assert.True(t, poly.IsInside(centroid))

			// Points well outside the hull are never inside
			for i := 0; i < 16; i++ {
				far := centroid.Add(core.FromAngle(float64(i) * math.Pi / 8).Multiply(10))
				assert.False(t, poly.IsInside(far))
			}
		})
	}
}

func TestPolygon_Intersect_NearestEdge(t *testing.T) {
	square, err := NewRectangle(core.NewVec2(0, 0), 0, 2, 2)
	require.NoError(t, err)

	hit, ok := square.Intersect(core.NewRay(core.NewVec2(-3, 0), core.NewVec2(1, 0)))
	require.True(t, ok)
	assert.InDelta(t, -1.0, hit.Point.X, 1e-9)
	assert.InDelta(t, 0.0, hit.Point.Y, 1e-9)
	assert.InDelta(t, -1.0, hit.Normal.X, 1e-9, "normal points outward")
	assert.InDelta(t, 0.0, hit.Normal.Y, 1e-9)

	// From inside, the exit edge is hit with its outward normal
	hit, ok = square.Intersect(core.NewRay(core.NewVec2(0, 0), core.NewVec2(0, 1)))
	require.True(t, ok)
	assert.InDelta(t, 1.0, hit.Point.Y, 1e-9)
	assert.InDelta(t, 1.0, hit.Normal.Y, 1e-9)
}

func TestPolygon_Intersect_Miss(t *testing.T) {
	square, err := NewRectangle(core.NewVec2(0, 0), 0, 2, 2)
	require.NoError(t, err)

	tests := []struct {
		name      string
		origin    core.Vec2
		direction core.Vec2
	}{
		{"pointing away", core.NewVec2(-3, 0), core.NewVec2(-1, 0)},
		{"passing above", core.NewVec2(-3, 2), core.NewVec2(1, 0)},
		{"parallel to edge", core.NewVec2(-3, 1), core.NewVec2(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := square.Intersect(core.NewRay(tt.origin, tt.direction))
			assert.False(t, ok)
		})
	}
}

func TestNewRectangle_Rotation(t *testing.T) {
	rect, err := NewRectangle(core.NewVec2(0, 0), math.Pi/4, 2, 2)
	require.NoError(t, err)

	// A square rotated by 45° reaches √2 along the axes
	assert.True(t, rect.IsInside(core.NewVec2(1.3, 0)))
	assert.False(t, rect.IsInside(core.NewVec2(1, 1)))
}
