package renderer

import (
	"image"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/vini-fda/luz/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels       int           // Total number of pixels rendered
	TotalSamples      int           // Total number of samples taken
	AverageSamples    float64       // Average samples per pixel
	Columns           int           // Number of image columns rendered
	MeanPixelVariance float64       // Mean per-pixel luminance variance of the samples
	MeanLuminance     float64       // Mean pixel luminance of the framebuffer
	LuminanceStdDev   float64       // Standard deviation of pixel luminance
	Duration          time.Duration // Wall time of the whole render

	varianceSum float64
}

// addPixel records one finished pixel
func (s *RenderStats) addPixel(ps *PixelStats) {
	s.TotalPixels++
	s.TotalSamples += ps.SampleCount
	s.varianceSum += ps.Variance()
}

// Merge adds the counters of other into s. Luminance figures and duration are
// computed once for the whole image and are left untouched.
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.Columns += other.Columns
	s.varianceSum += other.varianceSum
	s.finalize()
}

func (s *RenderStats) finalize() {
	if s.TotalPixels == 0 {
		s.AverageSamples = 0
		s.MeanPixelVariance = 0
		return
	}
	s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	s.MeanPixelVariance = s.varianceSum / float64(s.TotalPixels)
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Color // RGB accumulator for final result
	LuminanceAccum   float64    // Luminance accumulator
	LuminanceSqAccum float64    // Luminance squared for variance
	SampleCount      int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Black()
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the sample variance of the luminance estimates
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	mean := ps.LuminanceAccum / float64(ps.SampleCount)
	meanSq := ps.LuminanceSqAccum / float64(ps.SampleCount)
	return max(0, meanSq-mean*mean)
}

// CalculateAverageLuminance returns the mean luminance of an 8-bit image in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	luminances := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			luminances = append(luminances, core.NewColor(
				float64(c.R)/255.0,
				float64(c.G)/255.0,
				float64(c.B)/255.0,
			).Luminance())
		}
	}
	return stat.Mean(luminances, nil)
}
