package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validatePositive(field string, value int) []ValidationError {
	if value <= 0 {
		return []ValidationError{{Field: field, Message: "must be positive"}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{Field: field, Message: "must be non-negative"}}
	}
	return nil
}

func validateHexColor(field, value string) []ValidationError {
	hex := strings.TrimPrefix(value, "#")
	if len(value) == len(hex) || (len(hex) != 3 && len(hex) != 6 && len(hex) != 8) {
		return []ValidationError{{Field: field, Message: fmt.Sprintf("invalid hex color %q", value)}}
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return []ValidationError{{Field: field, Message: fmt.Sprintf("invalid hex color %q", value)}}
		}
	}
	return nil
}

// Validate collects every problem in the config rather than stopping at the first
func (c *RenderConfig) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, validatePositive("image.width", c.Image.Width)...)
	errs = append(errs, validatePositive("image.height", c.Image.Height)...)
	vp := c.Image.Viewport
	if !(vp.MaxX > vp.MinX) || !(vp.MaxY > vp.MinY) {
		errs = append(errs, ValidationError{Field: "image.viewport", Message: "max must exceed min on both axes"})
	}

	errs = append(errs, validatePositive("sampling.samples_per_pixel", c.Sampling.SamplesPerPixel)...)
	errs = append(errs, validatePositive("sampling.max_depth", c.Sampling.MaxDepth)...)
	errs = append(errs, validateNonNegative("sampling.workers", float64(c.Sampling.Workers))...)

	if c.Scene.Name == "" && c.Scene.File == "" {
		errs = append(errs, ValidationError{Field: "scene", Message: "either name or file is required"})
	}

	if c.Output.Path == "" {
		errs = append(errs, ValidationError{Field: "output.path", Message: "is required"})
	}
	errs = append(errs, validateNonNegative("output.exposure", c.Output.Exposure)...)
	if c.Output.Gamma <= 0 {
		errs = append(errs, ValidationError{Field: "output.gamma", Message: "must be positive"})
	}

	thumb := c.Output.Thumbnail
	if (thumb.MaxWidth > 0 || thumb.MaxHeight > 0) && thumb.Path == "" {
		errs = append(errs, ValidationError{Field: "output.thumbnail.path", Message: "is required when a size is set"})
	}

	if c.Output.Overlay.Enabled {
		errs = append(errs, validateHexColor("output.overlay.color", c.Output.Overlay.Color)...)
		if c.Output.Overlay.LineWidth <= 0 {
			errs = append(errs, ValidationError{Field: "output.overlay.line_width", Message: "must be positive"})
		}
	}

	if c.Output.Upload.Enabled && c.Output.Upload.Bucket == "" {
		errs = append(errs, ValidationError{Field: "output.upload.bucket", Message: "is required when upload is enabled"})
	}

	return errs
}

// FormatValidationErrors renders errors one per line
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")
	for _, err := range errs {
		fmt.Fprintf(&b, "  - %s\n", err.Error())
	}
	return b.String()
}
