package renderer

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/stat"

	"github.com/vini-fda/luz/pkg/core"
)

// Framebuffer holds the linear radiance estimate of every pixel, row-major
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Color {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores the color of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Color) {
	fb.Pixels[y*fb.Width+x] = c
}

// LuminanceStats returns the mean and standard deviation of pixel luminance
func (fb *Framebuffer) LuminanceStats() (mean, stdDev float64) {
	if len(fb.Pixels) < 2 {
		if len(fb.Pixels) == 1 {
			return fb.Pixels[0].Luminance(), 0
		}
		return 0, 0
	}
	luminances := make([]float64, len(fb.Pixels))
	for i, c := range fb.Pixels {
		luminances[i] = c.Luminance()
	}
	return stat.MeanStdDev(luminances, nil)
}

// ToneMap converts linear radiance into displayable 8-bit color
type ToneMap struct {
	Exposure float64 `yaml:"exposure"`
	Gamma    float64 `yaml:"gamma"`
}

// DefaultToneMap returns unit exposure with gamma 2.2
func DefaultToneMap() ToneMap {
	return ToneMap{Exposure: 1.0, Gamma: 2.2}
}

// Apply scales and clamps one color to [0, 1], then gamma-corrects it
func (tm ToneMap) Apply(c core.Color) color.RGBA {
	c = c.Multiply(tm.Exposure).Clamp(0.0, 1.0)
	if tm.Gamma > 0 {
		c = c.GammaCorrect(tm.Gamma)
	}

	return color.RGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: 255,
	}
}

// ToRGBA tone maps the whole framebuffer
func (fb *Framebuffer) ToRGBA(tm ToneMap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, tm.Apply(fb.At(x, y)))
		}
	}
	return img
}
