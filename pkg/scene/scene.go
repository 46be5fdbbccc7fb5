package scene

import (
	"path/filepath"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/geometry"
	"github.com/df07/go-volume-raytracer/pkg/renderer"
	"github.com/df07/go-volume-raytracer/pkg/texture"
)

const earthTextureFile = "earthmap.jpg"

var (
	skyBackground   = core.NewVec3(0.70, 0.80, 1.00)
	blackBackground = core.NewVec3(0, 0, 0)
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	World      core.Hittable
	Camera     renderer.CameraConfig
	Sampling   renderer.SamplingConfig
	Background core.Vec3 // Color of rays that escape the world
}

// Options controls how scenes are built
type Options struct {
	Seed       int64  // Seed of the random placement, noise and BVH split axes
	TextureDir string // Directory holding image textures
}

// DefaultOptions returns the options the built-in scenes are tuned for
func DefaultOptions() Options {
	return Options{
		Seed:       42,
		TextureDir: "textures",
	}
}

// BVHStats reports the shape of the world's acceleration structure
func (s *Scene) BVHStats() (geometry.BVHStats, bool) {
	bvh, ok := s.World.(*geometry.BVHNode)
	if !ok {
		return geometry.BVHStats{}, false
	}
	return bvh.Stats(), true
}

func newScene(name string, world core.Hittable, camera renderer.CameraConfig, sampling renderer.SamplingConfig, background core.Vec3) *Scene {
	return &Scene{
		Name:       name,
		World:      world,
		Camera:     camera,
		Sampling:   sampling,
		Background: background,
	}
}

// bookCamera is the camera most scenes share: 400 pixels wide, 16:9,
// looking at the origin from (13, 2, 3)
func bookCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:        400,
		AspectRatio:  16.0 / 9.0,
		VFov:         20,
		LookFrom:     core.NewVec3(13, 2, 3),
		LookAt:       core.NewVec3(0, 0, 0),
		VUp:          core.NewVec3(0, 1, 0),
		DefocusAngle: 0.6,
		FocusDist:    10,
	}
}

func defaultSampling() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// earthTexture loads the earth map. A missing file is rendered cyan rather
// than failing the scene.
func earthTexture(opts Options) texture.Texture {
	path := filepath.Join(opts.TextureDir, earthTextureFile)

	tex, err := texture.NewImageTextureFromFile(path)
	if err != nil {
		logs.Warn(err)
		return texture.NewImageTexture(nil)
	}
	return tex
}
