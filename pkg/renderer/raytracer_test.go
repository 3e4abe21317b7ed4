package renderer

import (
	"context"
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vini-fda/luz/pkg/core"
	"github.com/vini-fda/luz/pkg/scene"
)

func newTestRaytracer(t *testing.T, sceneName string, config Config) *Raytracer {
	t.Helper()
	s, err := scene.NewBuiltinScene(sceneName)
	require.NoError(t, err)
	rt, err := NewRaytracer(s, config, nil)
	require.NoError(t, err)
	return rt
}

func smallConfig() Config {
	config := DefaultConfig()
	config.Width = 12
	config.Height = 8
	config.SamplesPerPixel = 16
	config.MaxDepth = 6
	config.NumWorkers = 3
	return config
}

func TestSamplePointInsideEmitter(t *testing.T) {
	config := DefaultConfig()
	config.SamplesPerPixel = 100
	rt := newTestRaytracer(t, "emitter", config)

	got := rt.SamplePoint(core.NewVec2(0.5, 0.5), core.NewSeededSampler(42))
	assert.InDelta(t, 5.0, got.R, 1e-12)
	assert.InDelta(t, 5.0, got.G, 1e-12)
	assert.InDelta(t, 5.0, got.B, 1e-12)
}

func TestSamplePointOutsideEmitterConverges(t *testing.T) {
	config := DefaultConfig()
	config.SamplesPerPixel = 1024
	rt := newTestRaytracer(t, "emitter", config)

	tests := []struct {
		name     string
		distance float64
	}{
		{"near", 0.3},
		{"mid", 0.4},
		{"far", 0.45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The circle subtends 2·asin(r/D) of the 2π directions
			expected := 5.0 * math.Asin(0.2/tt.distance) / math.Pi
			got := rt.SamplePoint(core.NewVec2(0.5+tt.distance, 0.5), core.NewSeededSampler(42))
			assert.InDelta(t, expected, got.R, 0.02)
			assert.InDelta(t, expected, got.G, 0.02)
		})
	}
}

func TestPixelCenter(t *testing.T) {
	config := smallConfig()
	config.Width = 4
	config.Height = 2
	rt := newTestRaytracer(t, "emitter", config)

	p := rt.PixelCenter(0, 0)
	assert.InDelta(t, 0.125, p.X, 1e-12)
	assert.InDelta(t, 0.25, p.Y, 1e-12)

	p = rt.PixelCenter(3, 1)
	assert.InDelta(t, 0.875, p.X, 1e-12)
	assert.InDelta(t, 0.75, p.Y, 1e-12)

	config.Viewport = Viewport{Min: core.NewVec2(-1, -1), Max: core.NewVec2(1, 1)}
	rt = newTestRaytracer(t, "emitter", config)
	p = rt.PixelCenter(0, 0)
	assert.InDelta(t, -0.75, p.X, 1e-12)
	assert.InDelta(t, -0.5, p.Y, 1e-12)
}

func TestRenderIsDeterministic(t *testing.T) {
	config := smallConfig()

	fb1, stats1, err := newTestRaytracer(t, "default", config).Render(context.Background())
	require.NoError(t, err)
	fb2, stats2, err := newTestRaytracer(t, "default", config).Render(context.Background())
	require.NoError(t, err)

	assert.Equal(t, fb1.Pixels, fb2.Pixels)
	assert.Equal(t, stats1.TotalSamples, stats2.TotalSamples)
	assert.Equal(t, config.Width*config.Height, stats1.TotalPixels)
	assert.Equal(t, config.Width*config.Height*config.SamplesPerPixel, stats1.TotalSamples)
	assert.Equal(t, config.Width, stats1.Columns)
	assert.InDelta(t, float64(config.SamplesPerPixel), stats1.AverageSamples, 1e-12)
}

func TestRenderDarkSceneIsBlack(t *testing.T) {
	fb, stats, err := newTestRaytracer(t, "dark", smallConfig()).Render(context.Background())
	require.NoError(t, err)

	for i, c := range fb.Pixels {
		assert.True(t, c.IsBlack(), "pixel %d", i)
	}
	assert.Zero(t, stats.MeanLuminance)
	assert.Zero(t, stats.MeanPixelVariance)
}

func TestRenderEmitterSceneHasLight(t *testing.T) {
	config := smallConfig()
	config.Width = 9
	config.Height = 9
	fb, stats, err := newTestRaytracer(t, "emitter", config).Render(context.Background())
	require.NoError(t, err)

	// The centre pixel lies inside the emitter
	center := fb.At(4, 4)
	assert.InDelta(t, 5.0, center.R, 1e-12)
	assert.Positive(t, stats.MeanLuminance)
	assert.Positive(t, stats.LuminanceStdDev)
	// Pixels outside the emitter see it along only some directions
	assert.Positive(t, stats.MeanPixelVariance)
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fb, _, err := newTestRaytracer(t, "default", smallConfig()).Render(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, fb)
}

func TestMoreWorkersThanColumns(t *testing.T) {
	config := smallConfig()
	config.Width = 2
	config.NumWorkers = 8

	fb, stats, err := newTestRaytracer(t, "emitter", config).Render(context.Background())
	require.NoError(t, err)
	assert.Len(t, fb.Pixels, 2*config.Height)
	assert.Equal(t, 2, stats.Columns)
}

func TestDefaultWorkerCount(t *testing.T) {
	rt := newTestRaytracer(t, "emitter", smallConfig())
	pool := NewWorkerPool(rt, 0, 42)
	assert.Equal(t, runtime.NumCPU(), pool.GetNumWorkers())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(c *Config) { c.Height = -3 }, ErrInvalidDimensions},
		{"zero samples", func(c *Config) { c.SamplesPerPixel = 0 }, ErrInvalidSamples},
		{"zero max depth", func(c *Config) { c.MaxDepth = 0 }, ErrInvalidMaxDepth},
		{"negative workers", func(c *Config) { c.NumWorkers = -1 }, ErrInvalidWorkers},
		{"flat viewport", func(c *Config) { c.Viewport.Max.Y = c.Viewport.Min.Y }, ErrInvalidViewport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			assert.ErrorIs(t, config.Validate(), tt.err)

			_, err := NewRaytracer(scene.NewScene(), config, nil)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}
