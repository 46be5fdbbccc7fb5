package scene

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var forward = core.NewInterval(0.001, 1e30)

func testOptions(t *testing.T) Options {
	return Options{Seed: 42, TextureDir: t.TempDir()}
}

func TestRegistry_Names(t *testing.T) {
	names := Names()
	require.Equal(t, []string{
		"bouncing-spheres",
		"checkered-spheres",
		"earth",
		"perlin-spheres",
		"quads",
		"simple-light",
		"cornell-box",
		"cornell-smoke",
		"final",
	}, names)

	infos := List()
	require.Len(t, infos, len(names))
	for i, info := range infos {
		assert.Equal(t, names[i], info.Name)
		assert.NotEmpty(t, info.Description)
	}
}

func TestCreate(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Create(name, testOptions(t))
			require.NoError(t, err)
			require.Equal(t, name, s.Name)
			require.NotNil(t, s.World)

			require.Positive(t, s.Camera.Width)
			require.Positive(t, s.Camera.AspectRatio)
			require.Positive(t, s.Sampling.SamplesPerPixel)
			require.Positive(t, s.Sampling.MaxDepth)

			stats, ok := s.BVHStats()
			require.True(t, ok)
			require.Positive(t, stats.Leaves)

			box := s.World.BoundingBox()
			require.Positive(t, box.X.Size())
			require.Positive(t, box.Y.Size())
		})
	}
}

func TestCreate_UnknownScene(t *testing.T) {
	s, err := Create("teapot", DefaultOptions())
	require.Error(t, err)
	require.Nil(t, s)
	require.True(t, errors.IsType(err, ErrTypeUnknownScene))
}

func TestBouncingSpheres_DeterministicForSeed(t *testing.T) {
	first := NewBouncingSpheres(Options{Seed: 5})
	second := NewBouncingSpheres(Options{Seed: 5})
	other := NewBouncingSpheres(Options{Seed: 6})

	firstStats, _ := first.BVHStats()
	secondStats, _ := second.BVHStats()
	require.Equal(t, firstStats, secondStats)
	require.Equal(t, first.World.BoundingBox(), second.World.BoundingBox())

	otherStats, _ := other.BVHStats()
	require.Positive(t, otherStats.Leaves)

	sampler := core.NewSeededSampler(1)
	camera := first.Camera
	for i := 0; i < 50; i++ {
		target := core.RandomVec3(sampler, -6, 6)
		target.Y = 0.2
		ray := core.NewRay(camera.LookFrom, target.Subtract(camera.LookFrom))

		r1, h1 := first.World.Hit(ray, forward, sampler)
		r2, h2 := second.World.Hit(ray, forward, sampler)
		require.Equal(t, h1, h2)
		if h1 {
			require.Equal(t, r1.T, r2.T)
		}
	}
}

func TestCornellBox_CenterRayHitsInsideRoom(t *testing.T) {
	s := NewCornellBox(DefaultOptions())

	ray := core.NewRay(s.Camera.LookFrom, s.Camera.LookAt.Subtract(s.Camera.LookFrom))
	rec, hit := s.World.Hit(ray, forward, nil)
	require.True(t, hit)

	// Nothing is hit before the open front of the room, nothing beyond the back wall
	require.GreaterOrEqual(t, rec.Point.Z, 0.0)
	require.LessOrEqual(t, rec.Point.Z, boxSize+1e-6)
}

func TestEarth_Texture(t *testing.T) {
	globe := func(dir string) core.Vec3 {
		s := NewEarth(Options{Seed: 1, TextureDir: dir})
		rec, hit := s.World.Hit(core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1)), forward, nil)
		require.True(t, hit)

		lambertian, ok := rec.Material.(*material.Lambertian)
		require.True(t, ok)
		return lambertian.Albedo.Value(rec.U, rec.V, rec.Point)
	}

	t.Run("missing file renders cyan", func(t *testing.T) {
		require.Equal(t, core.NewVec3(0, 1, 1), globe(t.TempDir()))
	})

	t.Run("loads the map from the texture dir", func(t *testing.T) {
		dir := t.TempDir()
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.Set(0, 0, color.RGBA{R: 255, A: 255})

		f, err := os.Create(filepath.Join(dir, earthTextureFile))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())

		require.Equal(t, core.NewVec3(1, 0, 0), globe(dir))
	})
}
