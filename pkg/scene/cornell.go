package scene

import (
	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/geometry"
	"github.com/df07/go-volume-raytracer/pkg/material"
	"github.com/df07/go-volume-raytracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellRoom returns the five walls and the ceiling light, open towards the camera
func cornellRoom(white core.Material) *geometry.HittableList {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	return geometry.NewHittableList(
		// Right wall (green) - YZ plane at x=boxSize
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		// Left wall (red) - YZ plane at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		// Light just below the ceiling
		geometry.NewQuad(core.NewVec3(343, 554, 443), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light),
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		// Ceiling
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)
}

// cornellBlocks returns the tall and the short block, rotated and moved into place
func cornellBlocks(white core.Material) (tall, short core.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65))

	return tall, short
}

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:       600,
		AspectRatio: 1.0,
		VFov:        40,
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		VUp:         core.NewVec3(0, 1, 0),
		FocusDist:   10,
	}
}

func cornellSampling() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		SamplesPerPixel: 200,
		MaxDepth:        50,
	}
}

// NewCornellBox creates the classic Cornell box with two white blocks
func NewCornellBox(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	world := cornellRoom(white)
	tall, short := cornellBlocks(white)
	world.Add(tall)
	world.Add(short)

	return newScene("cornell-box", geometry.NewBVHFromList(world, sampler), cornellCamera(), cornellSampling(), blackBackground)
}

// NewCornellSmoke creates the Cornell box with the blocks replaced by dark
// smoke and light fog
func NewCornellSmoke(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	world := cornellRoom(white)
	tall, short := cornellBlocks(white)
	world.Add(geometry.NewConstantMediumColor(tall, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMediumColor(short, 0.01, core.NewVec3(1, 1, 1)))

	return newScene("cornell-smoke", geometry.NewBVHFromList(world, sampler), cornellCamera(), cornellSampling(), blackBackground)
}
