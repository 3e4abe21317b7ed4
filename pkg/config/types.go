package config

import (
	"github.com/vini-fda/luz/pkg/core"
	"github.com/vini-fda/luz/pkg/renderer"
)

// RenderConfig is the top-level render description
type RenderConfig struct {
	Image    ImageConfig    `yaml:"image"`
	Sampling SamplingConfig `yaml:"sampling"`
	Scene    SceneConfig    `yaml:"scene"`
	Output   OutputConfig   `yaml:"output"`
}

// ImageConfig sets the framebuffer size and the region of the plane it covers
type ImageConfig struct {
	Width    int            `yaml:"width"`
	Height   int            `yaml:"height"`
	Viewport ViewportConfig `yaml:"viewport"`
}

// ViewportConfig is an axis-aligned rectangle of the scene plane
type ViewportConfig struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// SamplingConfig controls the Monte-Carlo estimator
type SamplingConfig struct {
	SamplesPerPixel int   `yaml:"samples_per_pixel"`
	MaxDepth        int   `yaml:"max_depth"`
	Workers         int   `yaml:"workers"`
	Seed            int64 `yaml:"seed"`
}

// SceneConfig selects a built-in scene by name or a scene file.
// File takes precedence when both are set.
type SceneConfig struct {
	Name string `yaml:"name,omitempty"`
	File string `yaml:"file,omitempty"`
}

// OutputConfig describes what is written once the render completes
type OutputConfig struct {
	Path      string          `yaml:"path"`
	Exposure  float64         `yaml:"exposure"`
	Gamma     float64         `yaml:"gamma"`
	Thumbnail ThumbnailConfig `yaml:"thumbnail"`
	Overlay   OverlayConfig   `yaml:"overlay"`
	Upload    UploadConfig    `yaml:"upload"`
}

// ThumbnailConfig bounds a downscaled copy of the render. Zero size disables it.
type ThumbnailConfig struct {
	Path      string `yaml:"path,omitempty"`
	MaxWidth  uint   `yaml:"max_width"`
	MaxHeight uint   `yaml:"max_height"`
}

// OverlayConfig draws primitive outlines on top of the render
type OverlayConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Color     string  `yaml:"color"`
	LineWidth float64 `yaml:"line_width"`
}

// UploadConfig pushes the encoded PNG to an S3-compatible bucket.
// Credentials and endpoint are read from the environment or EnvFile.
type UploadConfig struct {
	Enabled bool   `yaml:"enabled"`
	Bucket  string `yaml:"bucket,omitempty"`
	Key     string `yaml:"key,omitempty"`
	EnvFile string `yaml:"env_file,omitempty"`
}

// Default returns the configuration used when no file is given
func Default() *RenderConfig {
	rc := renderer.DefaultConfig()
	tm := renderer.DefaultToneMap()
	return &RenderConfig{
		Image: ImageConfig{
			Width:  rc.Width,
			Height: rc.Height,
			Viewport: ViewportConfig{
				MinX: rc.Viewport.Min.X,
				MinY: rc.Viewport.Min.Y,
				MaxX: rc.Viewport.Max.X,
				MaxY: rc.Viewport.Max.Y,
			},
		},
		Sampling: SamplingConfig{
			SamplesPerPixel: rc.SamplesPerPixel,
			MaxDepth:        rc.MaxDepth,
			Workers:         rc.NumWorkers,
			Seed:            rc.Seed,
		},
		Scene: SceneConfig{Name: "default"},
		Output: OutputConfig{
			Path:     "output/render.png",
			Exposure: tm.Exposure,
			Gamma:    tm.Gamma,
			Overlay: OverlayConfig{
				Color:     "#ff4040",
				LineWidth: 1.5,
			},
		},
	}
}

// RendererConfig converts the image and sampling sections for the renderer
func (c *RenderConfig) RendererConfig() renderer.Config {
	return renderer.Config{
		Width:           c.Image.Width,
		Height:          c.Image.Height,
		SamplesPerPixel: c.Sampling.SamplesPerPixel,
		MaxDepth:        c.Sampling.MaxDepth,
		NumWorkers:      c.Sampling.Workers,
		Seed:            c.Sampling.Seed,
		Viewport: renderer.Viewport{
			Min: core.NewVec2(c.Image.Viewport.MinX, c.Image.Viewport.MinY),
			Max: core.NewVec2(c.Image.Viewport.MaxX, c.Image.Viewport.MaxY),
		},
	}
}

// ToneMap returns the output tone mapping parameters
func (c *RenderConfig) ToneMap() renderer.ToneMap {
	return renderer.ToneMap{Exposure: c.Output.Exposure, Gamma: c.Output.Gamma}
}
