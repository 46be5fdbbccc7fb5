package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(42)
	b := NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Get1D(), b.Get1D())
		require.Equal(t, a.Get3D(), b.Get3D())
	}
}

func TestRandomInt_Bounds(t *testing.T) {
	sampler := NewSeededSampler(1)
	seen := map[int]bool{}

	for i := 0; i < 1000; i++ {
		n := RandomInt(sampler, 0, 2)
		require.GreaterOrEqual(t, n, 0)
		require.LessOrEqual(t, n, 2)
		seen[n] = true
	}
	assert.Len(t, seen, 3, "every axis should be drawn")

	// A sampler returning the top of its range still lands on max
	assert.Equal(t, 2, RandomInt(ConstantSampler(1), 0, 2))
	assert.Equal(t, 0, RandomInt(ConstantSampler(0), 0, 2))
}

func TestRandomUnitVector_UnitLength(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 500; i++ {
		v := RandomUnitVector(sampler)
		require.InDelta(t, 1.0, v.Length(), 1e-9)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(5)
	for i := 0; i < 500; i++ {
		p := RandomInUnitDisk(sampler)
		require.Zero(t, p.Z)
		require.LessOrEqual(t, p.LengthSquared(), 1.0)
	}
}

func TestRandomRangeAndVec3(t *testing.T) {
	assert.Equal(t, 3.0, RandomRange(ConstantSampler(0.5), 2, 4))
	assert.Equal(t, NewVec3(0, 0, 0), RandomVec3(ConstantSampler(0.5), -1, 1))
}

func TestDegreesToRadians(t *testing.T) {
	assert.InDelta(t, math.Pi/2, DegreesToRadians(90), 1e-12)
	assert.InDelta(t, -math.Pi, DegreesToRadians(-180), 1e-12)
}
