package renderer

import (
	"math"

	"github.com/df07/go-volume-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     `json:"totalPixels"`    // Total number of pixels rendered
	TotalSamples   int     `json:"totalSamples"`   // Total number of samples taken
	AverageSamples float64 `json:"averageSamples"` // Average samples per pixel
	MaxSamples     int     `json:"maxSamples"`     // Samples per pixel targeted so far
	MinSamples     int     `json:"minSamples"`     // Minimum samples taken by any pixel
	MaxSamplesUsed int     `json:"maxSamplesUsed"` // Maximum samples taken by any pixel
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

func newRenderStats(pixels, targetSamples int) RenderStats {
	return RenderStats{
		TotalPixels: pixels,
		MaxSamples:  targetSamples,
		MinSamples:  math.MaxInt,
	}
}

func (s *RenderStats) addPixel(samples int) {
	s.TotalSamples += samples
	s.MinSamples = min(s.MinSamples, samples)
	s.MaxSamplesUsed = max(s.MaxSamplesUsed, samples)
}

func (s *RenderStats) finalize() {
	if s.TotalPixels == 0 {
		s.MinSamples = 0
		return
	}
	s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
}
