package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/stretchr/testify/require"
)

// mockMaterial scatters every ray straight up with a fixed attenuation
type mockMaterial struct {
	attenuation core.Vec3
	scatters    bool
}

func (m *mockMaterial) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, core.NewVec3(0, 1, 0)),
		Attenuation: m.attenuation,
	}, m.scatters
}

type mockEmitter struct {
	mockMaterial
	emission core.Vec3
}

func (m *mockEmitter) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return m.emission
}

// floor is hit by every downward ray
type floor struct {
	material  core.Material
	intervals []core.Interval
}

func (f *floor) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	f.intervals = append(f.intervals, rayT)
	if ray.Direction.Y >= 0 {
		return nil, false
	}
	t := -ray.Origin.Y / ray.Direction.Y
	if !rayT.Surrounds(t) {
		return nil, false
	}
	return core.NewHitRecord(ray, t, core.NewVec3(0, 1, 0), f.material, 0, 0), true
}

func (f *floor) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(core.NewVec3(-1e3, -1e-4, -1e3), core.NewVec3(1e3, 1e-4, 1e3))
}

func TestRaytracer_RayColor(t *testing.T) {
	background := core.NewVec3(0.5, 0.7, 1.0)
	down := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	up := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))

	absorber := &mockMaterial{scatters: false}
	halfGray := &mockMaterial{attenuation: core.NewVec3(0.5, 0.5, 0.5), scatters: true}
	light := &mockEmitter{emission: core.NewVec3(4, 4, 4)}
	glowing := &mockEmitter{mockMaterial: *halfGray, emission: core.NewVec3(1, 0, 0)}

	tests := []struct {
		name     string
		material core.Material
		ray      core.Ray
		depth    int
		expected core.Vec3
	}{
		{"miss sees background", absorber, up, 10, background},
		{"depth exhausted", halfGray, up, 0, core.NewVec3(0, 0, 0)},
		{"absorbed", absorber, down, 10, core.NewVec3(0, 0, 0)},
		{"attenuated background", halfGray, down, 10, background.Multiply(0.5)},
		{"last bounce gathers nothing", halfGray, down, 1, core.NewVec3(0, 0, 0)},
		{"emitter", light, down, 10, core.NewVec3(4, 4, 4)},
		{"emitted plus scattered", glowing, down, 10, core.NewVec3(1.25, 0.35, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := NewRaytracer(&floor{material: tt.material}, background)
			color := rt.RayColor(tt.ray, tt.depth, core.ConstantSampler(0.5))
			require.InDelta(t, 0, color.Subtract(tt.expected).Length(), 1e-12, "got %v", color)
		})
	}
}

func TestRaytracer_SkipsSelfIntersection(t *testing.T) {
	world := &floor{material: &mockMaterial{scatters: false}}
	rt := NewRaytracer(world, core.NewVec3(1, 1, 1))

	rt.RayColor(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), 5, nil)
	require.Len(t, world.intervals, 1)
	require.Equal(t, minHitDistance, world.intervals[0].Min)
	require.True(t, math.IsInf(world.intervals[0].Max, 1))
}

func TestVec3ToColor(t *testing.T) {
	tests := []struct {
		name     string
		input    core.Vec3
		expected uint8
	}{
		{"black", core.NewVec3(0, 0, 0), 0},
		{"white", core.NewVec3(1, 1, 1), 255},
		{"quarter is half after gamma", core.NewVec3(0.25, 0.25, 0.25), 128},
		{"overexposed clamps", core.NewVec3(40, 40, 40), 255},
		{"negative clamps", core.NewVec3(-1, -1, -1), 0},
		{"nan is black", core.NewVec3(math.NaN(), math.NaN(), math.NaN()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Vec3ToColor(tt.input)
			if c.R != tt.expected || c.G != tt.expected || c.B != tt.expected {
				t.Errorf("Expected %d, got %v", tt.expected, c)
			}
			if c.A != 255 {
				t.Errorf("Expected opaque pixel, got alpha %d", c.A)
			}
		})
	}
}
