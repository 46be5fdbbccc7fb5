package texture

import (
	"math"

	"github.com/df07/go-volume-raytracer/pkg/core"
)

// turbulenceDepth is the number of noise octaves in the marble pattern
const turbulenceDepth = 7

// Noise is a gray marble texture driven by Perlin turbulence
type Noise struct {
	Perlin *Perlin
	Scale  float64
}

// NewNoise creates a marble texture with a fresh Perlin generator
func NewNoise(scale float64, sampler core.Sampler) *Noise {
	return &Noise{Perlin: NewPerlin(sampler), Scale: scale}
}

// Value returns the marble intensity at p, in [0, 1]
func (n *Noise) Value(u, v float64, p core.Vec3) core.Vec3 {
	s := p.Multiply(n.Scale)
	intensity := 0.5 * (1 + math.Sin(s.Z+10*n.Perlin.Turbulence(s, turbulenceDepth)))
	return core.NewVec3(intensity, intensity, intensity)
}
