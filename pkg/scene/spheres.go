package scene

import (
	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/geometry"
	"github.com/df07/go-volume-raytracer/pkg/material"
	"github.com/df07/go-volume-raytracer/pkg/texture"
)

// NewBouncingSpheres creates the random sphere field on a checkered ground.
// Diffuse spheres move upward during the shutter interval.
func NewBouncingSpheres(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)
	world := geometry.NewHittableList()

	ground := material.NewTexturedLambertian(texture.NewCheckerColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				end := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				world.Add(geometry.NewMovingSphere(center, end, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	return newScene("bouncing-spheres", geometry.NewBVHFromList(world, sampler), bookCamera(), defaultSampling(), skyBackground)
}

// NewCheckeredSpheres creates two large spheres sharing one checker texture
func NewCheckeredSpheres(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	checker := material.NewTexturedLambertian(texture.NewCheckerColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return newScene("checkered-spheres", geometry.NewBVHFromList(world, sampler), bookCamera(), defaultSampling(), skyBackground)
}

// NewEarth creates a globe textured with the earth map from the texture directory
func NewEarth(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earthTexture(opts)))
	world := geometry.NewHittableList(globe)

	return newScene("earth", geometry.NewBVHFromList(world, sampler), bookCamera(), defaultSampling(), skyBackground)
}

// NewPerlinSpheres creates a marble sphere resting on a marble ground
func NewPerlinSpheres(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	marble := material.NewTexturedLambertian(texture.NewNoise(4, sampler))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return newScene("perlin-spheres", geometry.NewBVHFromList(world, sampler), bookCamera(), defaultSampling(), skyBackground)
}
