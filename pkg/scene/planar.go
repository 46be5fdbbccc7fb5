package scene

import (
	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/geometry"
	"github.com/df07/go-volume-raytracer/pkg/material"
	"github.com/df07/go-volume-raytracer/pkg/renderer"
	"github.com/df07/go-volume-raytracer/pkg/texture"
)

// NewQuads creates five colored quads framing the view
func NewQuads(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	world := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	camera := renderer.CameraConfig{
		Width:       400,
		AspectRatio: 1.0,
		VFov:        80,
		LookFrom:    core.NewVec3(0, 0, 9),
		LookAt:      core.NewVec3(0, 0, 0),
		VUp:         core.NewVec3(0, 1, 0),
		FocusDist:   10,
	}

	return newScene("quads", geometry.NewBVHFromList(world, sampler), camera, defaultSampling(), skyBackground)
}

// NewSimpleLight creates marble spheres lit by a glowing sphere and a rectangular light
func NewSimpleLight(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	marble := material.NewTexturedLambertian(texture.NewNoise(4, sampler))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
	)

	camera := bookCamera()
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)
	camera.DefocusAngle = 0

	return newScene("simple-light", geometry.NewBVHFromList(world, sampler), camera, defaultSampling(), blackBackground)
}
