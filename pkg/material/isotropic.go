package material

import (
	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/texture"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly in all directions and ignores the hit normal
type Isotropic struct {
	Albedo texture.Texture
}

// NewIsotropic creates a phase function with a textured albedo
func NewIsotropic(albedo texture.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// NewIsotropicColor creates a phase function with a solid albedo
func NewIsotropicColor(albedo core.Vec3) *Isotropic {
	return NewIsotropic(texture.NewSolidColor(albedo))
}

// Scatter picks a new direction uniformly on the sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Scattered:   core.NewRayWithTime(hit.Point, core.RandomUnitVector(sampler), rayIn.Time),
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}
