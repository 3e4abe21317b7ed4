package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/vini-fda/luz/pkg/config"
	"github.com/vini-fda/luz/pkg/core"
	"github.com/vini-fda/luz/pkg/loaders"
	"github.com/vini-fda/luz/pkg/output"
	"github.com/vini-fda/luz/pkg/renderer"
	"github.com/vini-fda/luz/pkg/scene"
)

var CLI struct {
	Render RenderCmd `cmd:"" default:"withargs" help:"Render a scene to PNG"`
	Scenes ScenesCmd `cmd:"" help:"List built-in scenes"`
	Config ConfigCmd `cmd:"" help:"Write the effective render config as YAML"`
}

// RenderCmd renders one scene. Flags left at their zero value keep the
// config file (or default) setting; --workers and --seed use -1 for that.
type RenderCmd struct {
	Config    string  `short:"c" help:"YAML render config file"`
	Scene     string  `short:"s" help:"Built-in scene name or path to a .yaml scene file"`
	Width     int     `help:"Image width in pixels"`
	Height    int     `help:"Image height in pixels"`
	Samples   int     `short:"n" help:"Stratified directions per pixel"`
	MaxDepth  int     `name:"max-depth" help:"Maximum number of scattering events per path"`
	Workers   int     `short:"w" default:"-1" help:"Number of parallel workers (0 uses all CPUs, negative keeps the config value)"`
	Seed      int64   `default:"-1" help:"Random seed (negative keeps the config value)"`
	Output    string  `short:"o" help:"Output PNG path"`
	Exposure  float64 `help:"Linear exposure multiplier"`
	Gamma     float64 `help:"Display gamma"`
	Overlay   bool    `help:"Draw primitive outlines over the render"`
	Thumbnail uint    `help:"Also write a thumbnail no larger than this many pixels on each side"`
	Upload    bool    `help:"Upload the PNG to S3"`
	Bucket    string  `help:"S3 bucket for --upload"`
	EnvFile   string  `name:"env-file" help:"dotenv file with S3 credentials"`
}

func (c *RenderCmd) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if errs := cfg.Validate(); len(errs) > 0 {
		return errors.New(config.FormatValidationErrors(errs))
	}

	logger := renderer.NewDefaultLogger()

	selectedScene, err := createScene(cfg.Scene)
	if err != nil {
		return err
	}
	logger.Printf("Loaded scene with %d entities (%d primitives)\n",
		len(selectedScene.Entities), selectedScene.GetPrimitiveCount())
	if !selectedScene.HasEmitters() {
		logger.Printf("Scene has no emitters, the render will be black\n")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return render(ctx, cfg, selectedScene, logger)
}

func render(ctx context.Context, cfg *config.RenderConfig, s *scene.Scene, logger core.Logger) error {
	raytracer, err := renderer.NewRaytracer(s, cfg.RendererConfig(), logger)
	if err != nil {
		return err
	}

	fb, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}
	logger.Printf("Samples per pixel: %.1f, luminance %.4f ± %.4f\n",
		stats.AverageSamples, stats.MeanLuminance, stats.LuminanceStdDev)

	rgba := fb.ToRGBA(cfg.ToneMap())
	logger.Printf("Mean pixel variance: %.4g, display luminance %.4f\n",
		stats.MeanPixelVariance, renderer.CalculateAverageLuminance(rgba))

	var img image.Image = rgba
	if cfg.Output.Overlay.Enabled {
		overlay := output.Overlay{
			Viewport:  raytracer.Config().Viewport,
			Color:     cfg.Output.Overlay.Color,
			LineWidth: cfg.Output.Overlay.LineWidth,
		}
		img = overlay.Draw(img, s)
	}

	data, err := output.EncodePNG(img)
	if err != nil {
		return err
	}
	if err := output.SavePNG(cfg.Output.Path, data); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", cfg.Output.Path)

	thumb := cfg.Output.Thumbnail
	if thumb.MaxWidth > 0 || thumb.MaxHeight > 0 {
		if err := output.WritePNG(thumb.Path, output.Thumbnail(img, thumb.MaxWidth, thumb.MaxHeight)); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s\n", thumb.Path)
	}

	if cfg.Output.Upload.Enabled {
		if err := upload(ctx, cfg.Output, data); err != nil {
			return err
		}
	}

	return nil
}

func upload(ctx context.Context, out config.OutputConfig, data []byte) error {
	s3Config, err := output.LoadS3Config(out.Upload.EnvFile)
	if err != nil {
		return err
	}
	uploader, err := output.NewUploader(s3Config, out.Upload.Bucket)
	if err != nil {
		return err
	}
	key := out.Upload.Key
	if key == "" {
		key = filepath.Base(out.Path)
	}
	return uploader.UploadPNG(ctx, data, key)
}

func (c *RenderCmd) loadConfig() (*config.RenderConfig, error) {
	if c.Config == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(c.Config, config.LoadOptions{ResolvePaths: true})
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c.Config, err)
	}
	return cfg, nil
}

func (c *RenderCmd) applyOverrides(cfg *config.RenderConfig) {
	if c.Scene != "" {
		if isSceneFile(c.Scene) {
			cfg.Scene = config.SceneConfig{File: c.Scene}
		} else {
			cfg.Scene = config.SceneConfig{Name: c.Scene}
		}
	}
	if c.Width > 0 {
		cfg.Image.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Image.Height = c.Height
	}
	if c.Samples > 0 {
		cfg.Sampling.SamplesPerPixel = c.Samples
	}
	if c.MaxDepth > 0 {
		cfg.Sampling.MaxDepth = c.MaxDepth
	}
	if c.Workers >= 0 {
		cfg.Sampling.Workers = c.Workers
	}
	if c.Seed >= 0 {
		cfg.Sampling.Seed = c.Seed
	}
	if c.Output != "" {
		cfg.Output.Path = c.Output
	}
	if c.Exposure > 0 {
		cfg.Output.Exposure = c.Exposure
	}
	if c.Gamma > 0 {
		cfg.Output.Gamma = c.Gamma
	}
	if c.Overlay {
		cfg.Output.Overlay.Enabled = true
	}
	if c.Thumbnail > 0 {
		cfg.Output.Thumbnail.MaxWidth = c.Thumbnail
		cfg.Output.Thumbnail.MaxHeight = c.Thumbnail
		if cfg.Output.Thumbnail.Path == "" {
			ext := filepath.Ext(cfg.Output.Path)
			cfg.Output.Thumbnail.Path = strings.TrimSuffix(cfg.Output.Path, ext) + "_thumb.png"
		}
	}
	if c.Upload {
		cfg.Output.Upload.Enabled = true
	}
	if c.Bucket != "" {
		cfg.Output.Upload.Bucket = c.Bucket
	}
	if c.EnvFile != "" {
		cfg.Output.Upload.EnvFile = c.EnvFile
	}
}

func isSceneFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// createScene loads the scene file when one is set, otherwise the named built-in scene
func createScene(sc config.SceneConfig) (*scene.Scene, error) {
	if sc.File != "" {
		s, err := loaders.LoadScene(sc.File)
		if err != nil {
			return nil, fmt.Errorf("loading scene %s: %w", sc.File, err)
		}
		return s, nil
	}
	return scene.NewBuiltinScene(sc.Name)
}

// ConfigCmd writes the config a render with the same flags would use
type ConfigCmd struct {
	Render RenderCmd `embed:""`
	Dump   string    `required:"" help:"Destination YAML file"`
}

func (c *ConfigCmd) Run() error {
	cfg, err := c.Render.loadConfig()
	if err != nil {
		return err
	}
	c.Render.applyOverrides(cfg)
	if errs := cfg.Validate(); len(errs) > 0 {
		return errors.New(config.FormatValidationErrors(errs))
	}
	if err := config.SaveToFile(cfg, c.Dump); err != nil {
		return err
	}
	fmt.Printf("Config written to %s\n", c.Dump)
	return nil
}

type ScenesCmd struct{}

func (ScenesCmd) Run() error {
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-10s %s\n", info.Name, info.Description)
	}
	fmt.Println()
	fmt.Println("Scene files: pass a .yaml path to --scene")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("luz"),
		kong.Description("2D Monte-Carlo light transport renderer"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
