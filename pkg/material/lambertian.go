package material

import (
	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/texture"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo texture.Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo texture.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter sends the ray off in a cosine-distributed direction around the normal
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(sampler))

	// Catch the unit vector landing opposite the normal
	if direction.NearZero() {
		direction = hit.Normal
	}

	return core.ScatterResult{
		Scattered:   core.NewRayWithTime(hit.Point, direction, rayIn.Time),
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}
