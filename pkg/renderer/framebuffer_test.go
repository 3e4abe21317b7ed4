package renderer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vini-fda/luz/pkg/core"
)

func TestFramebufferIndexing(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(2, 1, core.NewColor(1, 2, 3))

	assert.Equal(t, core.NewColor(1, 2, 3), fb.At(2, 1))
	assert.Equal(t, core.NewColor(1, 2, 3), fb.Pixels[5])
	assert.True(t, fb.At(0, 0).IsBlack())
}

func TestToneMapApply(t *testing.T) {
	tests := []struct {
		name     string
		toneMap  ToneMap
		input    core.Color
		expected color.RGBA
	}{
		{"black", DefaultToneMap(), core.Black(), color.RGBA{0, 0, 0, 255}},
		{"white linear", ToneMap{Exposure: 1, Gamma: 1}, core.Gray(1), color.RGBA{255, 255, 255, 255}},
		{"clamped", ToneMap{Exposure: 1, Gamma: 1}, core.NewColor(5, 0.5, -1), color.RGBA{255, 127, 0, 255}},
		{"exposure", ToneMap{Exposure: 0.1, Gamma: 1}, core.Gray(5), color.RGBA{127, 127, 127, 255}},
		{"gamma", ToneMap{Exposure: 1, Gamma: 2}, core.Gray(0.25), color.RGBA{127, 127, 127, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.toneMap.Apply(tt.input))
		})
	}
}

func TestFramebufferToRGBA(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Set(1, 0, core.Gray(10))

	img := fb.ToRGBA(DefaultToneMap())
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(1, 0))
}

func TestFramebufferLuminanceStats(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Set(0, 0, core.Gray(1))
	fb.Set(1, 0, core.Gray(3))

	mean, stdDev := fb.LuminanceStats()
	assert.InDelta(t, 2.0, mean, 1e-12)
	// Unbiased estimator: sqrt(((1-2)² + (3-2)²) / 1)
	assert.InDelta(t, 1.4142135623730951, stdDev, 1e-12)
}
