package material

import (
	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/texture"
)

// DiffuseLight is an emitting surface that scatters nothing
type DiffuseLight struct {
	Emission texture.Texture // Emitted light color/intensity
}

// NewDiffuseLight creates a light emitting a solid color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: texture.NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission follows a texture
func NewTexturedDiffuseLight(emission texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter absorbs every incoming ray
func (l *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the emission at the surface point
func (l *DiffuseLight) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return l.Emission.Value(u, v, point)
}
