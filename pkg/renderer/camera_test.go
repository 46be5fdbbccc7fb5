package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/stretchr/testify/require"
)

func testCameraConfig(width int, aspect float64) CameraConfig {
	return CameraConfig{
		Width:       width,
		AspectRatio: aspect,
		VFov:        90,
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		VUp:         core.NewVec3(0, 1, 0),
		FocusDist:   1,
	}
}

func TestCamera_Dimensions(t *testing.T) {
	tests := []struct {
		name           string
		width          int
		aspect         float64
		expectedWidth  int
		expectedHeight int
	}{
		{"wide", 200, 2, 200, 100},
		{"square", 64, 1, 64, 64},
		{"tall", 50, 0.5, 50, 100},
		{"height at least one pixel", 10, 100, 10, 1},
		{"width at least one pixel", 0, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(testCameraConfig(tt.width, tt.aspect))
			if camera.Width() != tt.expectedWidth || camera.Height() != tt.expectedHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight, camera.Width(), camera.Height())
			}
		})
	}
}

func TestCamera_CenterRay(t *testing.T) {
	camera := NewCamera(testCameraConfig(101, 1))

	center := camera.CenterRay(50, 50)
	require.Equal(t, core.NewVec3(0, 0, 0), center.Origin)
	require.InDelta(t, 0, center.Direction.Normalize().Subtract(core.NewVec3(0, 0, -1)).Length(), 1e-12)
	require.Zero(t, center.Time)

	// A 90 degree field of view spans [-1, 1] on a focus plane at distance 1
	left := camera.CenterRay(0, 50)
	require.InDelta(t, -1+1.0/101, left.Direction.X, 1e-12)
	require.InDelta(t, -1, left.Direction.Z, 1e-12)

	// Row 0 is the top of the image
	top := camera.CenterRay(50, 0)
	require.InDelta(t, 1-1.0/101, top.Direction.Y, 1e-12)
	bottom := camera.CenterRay(50, 100)
	require.Less(t, bottom.Direction.Y, 0.0)
}

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(testCameraConfig(200, 2))

	// A sampler returning 0.5 puts the jitter at the pixel center
	ray := camera.GetRay(17, 33, core.ConstantSampler(0.5))
	center := camera.CenterRay(17, 33)
	require.InDelta(t, 0, ray.Direction.Subtract(center.Direction).Length(), 1e-12)
	require.Equal(t, 0.5, ray.Time)

	// Jittered rays stay within half a pixel of the center
	sampler := core.NewSeededSampler(1)
	pixelWidth := 4.0 / 200
	for i := 0; i < 100; i++ {
		r := camera.GetRay(17, 33, sampler)
		require.Equal(t, center.Origin, r.Origin)
		require.LessOrEqual(t, math.Abs(r.Direction.X-center.Direction.X), pixelWidth/2+1e-12)
		require.GreaterOrEqual(t, r.Time, 0.0)
		require.Less(t, r.Time, 1.0)
	}
}

func TestCamera_Defocus(t *testing.T) {
	config := testCameraConfig(100, 1)
	config.DefocusAngle = 10
	config.FocusDist = 3
	camera := NewCamera(config)

	// Moved origins still converge on the focus plane
	ray := camera.GetRay(40, 60, core.ConstantSampler(0.5))
	center := camera.CenterRay(40, 60)
	require.NotEqual(t, center.Origin, ray.Origin)
	require.InDelta(t, 0, ray.Origin.Add(ray.Direction).Subtract(center.Origin.Add(center.Direction)).Length(), 1e-12)

	radius := 3 * math.Tan(core.DegreesToRadians(5))
	require.InDelta(t, radius*math.Sqrt(0.5), ray.Origin.Length(), 1e-12)

	noDefocus := NewCamera(testCameraConfig(100, 1))
	require.Equal(t, core.NewVec3(0, 0, 0), noDefocus.GetRay(40, 60, core.ConstantSampler(0.5)).Origin)
}

func TestCamera_LookDirection(t *testing.T) {
	config := testCameraConfig(11, 1)
	config.LookFrom = core.NewVec3(5, 0, 0)
	config.LookAt = core.NewVec3(0, 0, 0)
	camera := NewCamera(config)

	ray := camera.CenterRay(5, 5)
	require.Equal(t, config.LookFrom, ray.Origin)
	require.InDelta(t, 0, ray.Direction.Normalize().Subtract(core.NewVec3(-1, 0, 0)).Length(), 1e-12)
	require.Equal(t, config, camera.Config())
}
