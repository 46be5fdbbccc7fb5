package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// A RandomSampler is not safe for concurrent use; give each worker its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler from a fresh generator with the given seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomRange returns a random float64 in [min, max)
func RandomRange(sampler Sampler, min, max float64) float64 {
	return min + (max-min)*sampler.Get1D()
}

// RandomInt returns a random integer in [min, max]
func RandomInt(sampler Sampler, min, max int) int {
	n := min + int(float64(max-min+1)*sampler.Get1D())
	// Guards against samplers that return exactly 1
	if n > max {
		return max
	}
	return n
}

// RandomVec3 returns a vector with each component in [min, max)
func RandomVec3(sampler Sampler, min, max float64) Vec3 {
	s := sampler.Get3D()
	return NewVec3(min+(max-min)*s.X, min+(max-min)*s.Y, min+(max-min)*s.Z)
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	s := sampler.Get2D()
	z := 1 - 2*s.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * s.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomInUnitDisk returns a uniformly distributed point in the unit disk on the XY plane
func RandomInUnitDisk(sampler Sampler) Vec3 {
	s := sampler.Get2D()
	r := math.Sqrt(s.X)
	theta := 2 * math.Pi * s.Y
	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// ConstantSampler returns the same value for every draw, which pins a
// stochastic computation to one known outcome.
type ConstantSampler float64

// Get1D returns the constant
func (c ConstantSampler) Get1D() float64 {
	return float64(c)
}

// Get2D returns the constant in both dimensions
func (c ConstantSampler) Get2D() Vec2 {
	return NewVec2(float64(c), float64(c))
}

// Get3D returns the constant in all three dimensions
func (c ConstantSampler) Get3D() Vec3 {
	return NewVec3(float64(c), float64(c), float64(c))
}
