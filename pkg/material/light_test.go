package material

import (
	"testing"

	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/texture"
	"github.com/stretchr/testify/require"
)

func TestDiffuseLight(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))

	_, scattered := light.Scatter(core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)), upHit(), core.NewSeededSampler(1))
	require.False(t, scattered)
	require.Equal(t, core.NewVec3(4, 4, 4), light.Emitted(0, 0, core.NewVec3(0, 0, 0)))

	var _ core.Emitter = light
}

func TestDiffuseLight_Textured(t *testing.T) {
	light := NewTexturedDiffuseLight(texture.NewCheckerColors(1, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0)))

	require.Equal(t, core.NewVec3(1, 1, 1), light.Emitted(0, 0, core.NewVec3(0.5, 0.5, 0.5)))
	require.Equal(t, core.NewVec3(0, 0, 0), light.Emitted(0, 0, core.NewVec3(1.5, 0.5, 0.5)))
}

func TestIsotropic(t *testing.T) {
	iso := NewIsotropicColor(core.NewVec3(0.2, 0.4, 0.9))
	sampler := core.NewSeededSampler(3)

	// The normal of a medium hit carries no meaning and must not bias the result
	hit := upHit()
	ray := core.NewRayWithTime(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), 0.7)

	below := 0
	for i := 0; i < 1000; i++ {
		scatter, ok := iso.Scatter(ray, hit, sampler)
		require.True(t, ok)
		require.Equal(t, core.NewVec3(0.2, 0.4, 0.9), scatter.Attenuation)
		require.Equal(t, hit.Point, scatter.Scattered.Origin)
		require.Equal(t, 0.7, scatter.Scattered.Time)
		require.InDelta(t, 1, scatter.Scattered.Direction.Length(), 1e-9)
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			below++
		}
	}
	require.InDelta(t, 500, below, 100)
}
