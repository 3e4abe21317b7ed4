package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
}

// LoadFromFile loads a RenderConfig from a YAML file. Fields missing from the
// file keep their Default values.
func LoadFromFile(path string, opts LoadOptions) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ResolvePaths {
		config.ResolvePaths(NewPathResolver(filepath.Dir(path)))
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors: %v", errs)
		}
	}

	return config, nil
}

// SaveToFile saves a RenderConfig to a YAML file
func SaveToFile(config *RenderConfig, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths makes every file path in the config relative to the resolver's base
func (c *RenderConfig) ResolvePaths(resolver *PathResolver) {
	if c.Scene.File != "" {
		c.Scene.File = resolver.ResolvePath(c.Scene.File)
	}
	if c.Output.Path != "" {
		c.Output.Path = resolver.ResolvePath(c.Output.Path)
	}
	if c.Output.Thumbnail.Path != "" {
		c.Output.Thumbnail.Path = resolver.ResolvePath(c.Output.Thumbnail.Path)
	}
	if c.Output.Upload.EnvFile != "" {
		c.Output.Upload.EnvFile = resolver.ResolvePath(c.Output.Upload.EnvFile)
	}
}

// PathResolver handles resolution of relative paths in the config
type PathResolver struct {
	baseDir string
}

// NewPathResolver creates a new PathResolver relative to the given base directory
func NewPathResolver(baseDir string) *PathResolver {
	return &PathResolver{baseDir: baseDir}
}

// ResolvePath resolves a potentially relative path to an absolute path
func (pr *PathResolver) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(pr.baseDir, path)
}
