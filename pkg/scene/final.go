package scene

import (
	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/geometry"
	"github.com/df07/go-volume-raytracer/pkg/material"
	"github.com/df07/go-volume-raytracer/pkg/renderer"
	"github.com/df07/go-volume-raytracer/pkg/texture"
)

const (
	boxesPerSide = 20
	clusterCount = 1000
)

// NewFinal creates the closing scene of the series: a field of boxes under a
// ceiling light, with a moving sphere, fog inside glass, a global mist, the
// earth, marble and a rotated cluster of small spheres.
func NewFinal(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := geometry.NewHittableList()
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}

	world := geometry.NewHittableList()
	world.Add(geometry.NewBVHFromList(boxes, sampler))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	start := core.NewVec3(400, 400, 200)
	end := start.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(start, end, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Glass ball filled with blue fog
	boundary := geometry.NewSphere(core.NewVec3(265, 150, 45), 50, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMediumColor(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMediumColor(mist, 0.0001, core.NewVec3(1, 1, 1)))

	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earthTexture(opts))))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(texture.NewNoise(0.1, sampler))))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := geometry.NewHittableList()
	for i := 0; i < clusterCount; i++ {
		cluster.Add(geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVHFromList(cluster, sampler), 15),
		core.NewVec3(-100, 270, 395),
	))

	camera := renderer.CameraConfig{
		Width:       800,
		AspectRatio: 1.0,
		VFov:        40,
		LookFrom:    core.NewVec3(478, 278, -600),
		LookAt:      core.NewVec3(278, 278, 0),
		VUp:         core.NewVec3(0, 1, 0),
		FocusDist:   10,
	}
	sampling := renderer.SamplingConfig{
		SamplesPerPixel: 1000,
		MaxDepth:        40,
	}

	return newScene("final", geometry.NewBVHFromList(world, sampler), camera, sampling, blackBackground)
}
