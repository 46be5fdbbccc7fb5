package geometry

import (
	"math"

	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/material"
	"github.com/df07/go-volume-raytracer/pkg/texture"
)

// mediumExitEpsilon separates the exit search from the entry point
const mediumExitEpsilon = 0.0001

// ConstantMedium is a participating medium of uniform density filling a
// boundary shape. The boundary must be closed and convex: a ray is assumed to
// be inside it between its first hit and the next one.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium whose scattering albedo comes from a texture
func NewConstantMedium(boundary core.Hittable, density float64, albedo texture.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewIsotropic(albedo),
		negInvDensity: -1 / density,
	}
}

// NewConstantMediumColor creates a medium with a solid scattering albedo
func NewConstantMediumColor(boundary core.Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewConstantMedium(boundary, density, texture.NewSolidColor(albedo))
}

// HitDistance converts a uniform sample r in (0, 1) into the free-flight
// distance of an exponential distribution with the medium's density
func (m *ConstantMedium) HitDistance(r float64) float64 {
	return m.negInvDensity * math.Log(r)
}

// Hit finds where the ray enters and leaves the boundary and samples a
// scattering point between them. The sampled normal and face are arbitrary.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, core.Universe(), sampler)
	if !ok {
		return nil, false
	}

	exit, ok := m.Boundary.Hit(ray, core.NewInterval(entry.T+mediumExitEpsilon, math.Inf(1)), sampler)
	if !ok {
		return nil, false
	}

	tEnter := max(entry.T, rayT.Min)
	tExit := min(exit.T, rayT.Max)
	if tEnter >= tExit {
		return nil, false
	}
	tEnter = max(tEnter, 0)

	rayLength := ray.Direction.Length()
	distanceInside := (tExit - tEnter) * rayLength
	hitDistance := m.HitDistance(sampler.Get1D())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := tEnter + hitDistance/rayLength
	return &core.HitRecord{
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		Material:  m.PhaseFunction,
		T:         t,
		FrontFace: true,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
