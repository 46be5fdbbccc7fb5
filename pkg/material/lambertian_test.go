package material

import (
	"testing"

	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/texture"
)

func upHit() *core.HitRecord {
	return &core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
		U:         0.25,
		V:         0.75,
	}
}

func TestLambertian_ScattersAboveSurface(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)
	ray := core.NewRayWithTime(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0.3)

	for i := 0; i < 200; i++ {
		scatter, didScatter := lambertian.Scatter(ray, upHit(), sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Direction.Dot(core.NewVec3(0, 0, 1)) < 0 {
			t.Errorf("Scattered direction %v points below the surface", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Time != 0.3 {
			t.Errorf("Expected scattered ray to keep time 0.3, got %v", scatter.Scattered.Time)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))

	// Get2D of (1, x) gives z = -1: exactly opposite the normal
	scatter, _ := lambertian.Scatter(core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)), upHit(), core.ConstantSampler(1))
	if scatter.Scattered.Direction != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected fallback to normal, got %v", scatter.Scattered.Direction)
	}
}

func TestLambertian_Textured(t *testing.T) {
	checker := texture.NewCheckerColors(1, core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	lambertian := NewTexturedLambertian(checker)

	hit := upHit()
	hit.Point = core.NewVec3(1.5, 0.5, 0.5)
	scatter, _ := lambertian.Scatter(core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)), hit, core.NewSeededSampler(1))

	if scatter.Attenuation != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected odd checker color, got %v", scatter.Attenuation)
	}
}
