package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vini-fda/luz/pkg/core"
	"github.com/vini-fda/luz/pkg/integrator"
	"github.com/vini-fda/luz/pkg/scene"
)

var (
	ErrInvalidDimensions = errors.New("image dimensions must be positive")
	ErrInvalidSamples    = errors.New("samples per pixel must be positive")
	ErrInvalidMaxDepth   = errors.New("max depth must be positive")
	ErrInvalidWorkers    = errors.New("number of workers must not be negative")
	ErrInvalidViewport   = errors.New("viewport must have positive extent")
)

// Viewport is the region of the scene plane covered by the image
type Viewport struct {
	Min core.Vec2
	Max core.Vec2
}

// DefaultViewport covers the unit square
func DefaultViewport() Viewport {
	return Viewport{Min: core.NewVec2(0, 0), Max: core.NewVec2(1, 1)}
}

// Config contains rendering configuration
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int   // Number of stratified directions per pixel
	MaxDepth        int   // Maximum path length in scattering events
	NumWorkers      int   // 0 uses runtime.NumCPU()
	Seed            int64 // Worker w samples with Seed+w
	Viewport        Viewport
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           512,
		Height:          512,
		SamplesPerPixel: 256,
		MaxDepth:        10,
		NumWorkers:      0,
		Seed:            42,
		Viewport:        DefaultViewport(),
	}
}

// Validate checks the configuration before any work is scheduled
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxDepth, c.MaxDepth)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.NumWorkers)
	}
	if !(c.Viewport.Max.X > c.Viewport.Min.X) || !(c.Viewport.Max.Y > c.Viewport.Min.Y) {
		return ErrInvalidViewport
	}
	return nil
}

// Raytracer estimates the radiance at points of the scene plane
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a raytracer backed by a path tracing integrator
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) (*Raytracer, error) {
	if s == nil {
		return nil, errors.New("scene is nil")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		scene:      s,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		config:     config,
		logger:     logger,
	}, nil
}

// Config returns the raytracer's configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// PixelCenter maps pixel (x, y) to the centre of its cell in the viewport
func (rt *Raytracer) PixelCenter(x, y int) core.Vec2 {
	vp := rt.config.Viewport
	u := (float64(x) + 0.5) / float64(rt.config.Width)
	v := (float64(y) + 0.5) / float64(rt.config.Height)
	return core.NewVec2(
		vp.Min.X+u*(vp.Max.X-vp.Min.X),
		vp.Min.Y+v*(vp.Max.Y-vp.Min.Y),
	)
}

// SamplePoint averages the radiance arriving at p over SamplesPerPixel
// stratified directions
func (rt *Raytracer) SamplePoint(p core.Vec2, sampler core.Sampler) core.Color {
	ps := rt.samplePoint(p, sampler)
	return ps.GetColor()
}

func (rt *Raytracer) samplePoint(p core.Vec2, sampler core.Sampler) PixelStats {
	var ps PixelStats
	n := rt.config.SamplesPerPixel
	for i := 0; i < n; i++ {
		theta := core.StratifiedAngle(i, n, sampler.Get1D())
		ray := core.NewRay(p, core.FromAngle(theta))
		ps.AddSample(rt.integrator.RayColor(ray, rt.scene, sampler))
	}
	return ps
}

// renderColumn fills column x of the framebuffer. Columns never overlap, so
// concurrent calls for distinct x need no locking.
func (rt *Raytracer) renderColumn(x int, fb *Framebuffer, sampler core.Sampler) RenderStats {
	stats := RenderStats{Columns: 1}
	for y := 0; y < rt.config.Height; y++ {
		ps := rt.samplePoint(rt.PixelCenter(x, y), sampler)
		fb.Set(x, y, ps.GetColor())
		stats.addPixel(&ps)
	}
	stats.finalize()
	return stats
}

// Render estimates every pixel in parallel. The only failure is context
// cancellation, in which case the partial framebuffer is discarded.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	start := time.Now()
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	pool := NewWorkerPool(rt, rt.config.NumWorkers, rt.config.Seed)

	rt.logger.Printf("Rendering %dx%d at %d samples/pixel, max depth %d (using %d workers)...\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.GetNumWorkers())

	stats, err := pool.Run(ctx, fb)
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", err)
	}

	stats.MeanLuminance, stats.LuminanceStdDev = fb.LuminanceStats()
	stats.Duration = time.Since(start)

	rt.logger.Printf("Render completed in %v (%d samples, mean luminance %.4f, mean pixel variance %.4g)\n",
		stats.Duration, stats.TotalSamples, stats.MeanLuminance, stats.MeanPixelVariance)

	return fb, stats, nil
}
