package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-volume-raytracer/pkg/core"
)

// minHitDistance keeps scattered rays from re-hitting the surface they left
const minHitDistance = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Raytracer computes the light arriving along a ray
type Raytracer struct {
	world      core.Hittable
	background core.Vec3
}

// NewRaytracer creates a raytracer over a world. Rays that escape the world
// see the background color.
func NewRaytracer(world core.Hittable, background core.Vec3) *Raytracer {
	return &Raytracer{world: world, background: background}
}

// RayColor returns the color seen along r, following at most depth bounces
func (rt *Raytracer) RayColor(r core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.world.Hit(r, core.NewInterval(minHitDistance, math.Inf(1)), sampler)
	if !isHit {
		return rt.background
	}

	var emitted core.Vec3
	if emitter, ok := hit.Material.(core.Emitter); ok {
		emitted = emitter.Emitted(hit.U, hit.V, hit.Point)
	}

	scatter, didScatter := hit.Material.Scatter(r, hit, sampler)
	if !didScatter {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth-1, sampler)))
}

// Vec3ToColor converts a linear color to RGBA with gamma 2 and clamping.
// NaN components come out black.
func Vec3ToColor(c core.Vec3) color.RGBA {
	c = c.GammaCorrect(2.0)

	channel := func(x float64) uint8 {
		if !(x > 0) {
			return 0
		}
		return uint8(256 * min(x, 0.999))
	}

	return color.RGBA{
		R: channel(c.X),
		G: channel(c.Y),
		B: channel(c.Z),
		A: 255,
	}
}
