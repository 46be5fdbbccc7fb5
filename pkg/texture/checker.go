package texture

import (
	"math"

	"github.com/df07/go-volume-raytracer/pkg/core"
)

// Checker alternates between two textures in a 3D grid of cubes
type Checker struct {
	Even     Texture
	Odd      Texture
	invScale float64
}

// NewChecker creates a checker whose cubes have side length scale
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd, invScale: 1 / scale}
}

// NewCheckerColors creates a checker of two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *Checker {
	return NewChecker(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value picks the texture of the cube containing p
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	x := int(math.Floor(c.invScale * p.X))
	y := int(math.Floor(c.invScale * p.Y))
	z := int(math.Floor(c.invScale * p.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
