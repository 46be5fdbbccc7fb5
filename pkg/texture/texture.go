package texture

import (
	"github.com/df07/go-volume-raytracer/pkg/core"
)

// Texture provides spatially varying colors for materials.
// u, v are surface coordinates; p is the hit point, used by solid textures.
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidColorRGB creates a solid color texture from components
func NewSolidColorRGB(r, g, b float64) *SolidColor {
	return NewSolidColor(core.NewVec3(r, g, b))
}

// Value returns the solid color regardless of coordinates
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}
