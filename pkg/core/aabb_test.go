package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAABB_FromPointsOrdersCorners(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, -2, 3), NewVec3(-1, 2, -3))

	require.Equal(t, NewInterval(-1, 1), box.X)
	require.Equal(t, NewInterval(-2, 2), box.Y)
	require.Equal(t, NewInterval(-3, 3), box.Z)
}

func TestAABB_Axis(t *testing.T) {
	box := NewAABB(NewInterval(0, 1), NewInterval(2, 3), NewInterval(4, 5))

	require.Equal(t, box.X, box.Axis(0))
	require.Equal(t, box.Y, box.Axis(1))
	require.Equal(t, box.Z, box.Axis(2))
	require.Panics(t, func() { box.Axis(3) })
	require.Panics(t, func() { box.Axis(-1) })
}

func TestAABB_UnionWithEmpty(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	require.Equal(t, box, UnionAABB(EmptyAABB, box))
	require.Equal(t, box, box.Union(EmptyAABB))

	other := NewAABBFromPoints(NewVec3(2, -1, 0), NewVec3(3, 0, 0.5))
	u := box.Union(other)
	require.Equal(t, NewVec3(0, -1, 0), u.Min())
	require.Equal(t, NewVec3(3, 1, 1), u.Max())
}

func TestAABB_Pad(t *testing.T) {
	flat := NewAABBFromPoints(NewVec3(0, 5, 0), NewVec3(2, 5, 2))
	padded := flat.Pad()

	require.Equal(t, flat.X, padded.X)
	require.Equal(t, flat.Z, padded.Z)
	require.InDelta(t, aabbPadding, padded.Y.Size(), 1e-12)
	require.True(t, padded.Y.Surrounds(5))
}

func TestAABB_Translate(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 2, 3))
	moved := box.Translate(NewVec3(10, -1, 0.5))

	require.Equal(t, NewVec3(10, -1, 0.5), moved.Min())
	require.Equal(t, NewVec3(11, 1, 3.5), moved.Max())
	// Receiver is unchanged
	require.Equal(t, NewVec3(0, 0, 0), box.Min())
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	forward := NewInterval(0.001, math.Inf(1))

	tests := []struct {
		name     string
		ray      Ray
		rayT     Interval
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), forward, true},
		{"negative direction", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), forward, true},
		{"diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), forward, true},
		{"miss to the side", NewRay(NewVec3(3, 0, -5), NewVec3(0, 0, 1)), forward, false},
		{"box behind origin", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), forward, false},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), forward, true},
		{"interval ends before box", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), NewInterval(0, 3), false},
		{"parallel inside slab", NewRay(NewVec3(0.5, 0.5, -5), NewVec3(0, 0, 1)), forward, true},
		{"parallel outside slab", NewRay(NewVec3(1.5, 0.5, -5), NewVec3(0, 0, 1)), forward, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, box.Hit(tt.ray, tt.rayT))
		})
	}
}

func TestAABB_HitZeroThicknessNeedsPadding(t *testing.T) {
	flat := NewAABBFromPoints(NewVec3(-1, 0, -1), NewVec3(1, 0, 1))
	ray := NewRay(NewVec3(0.2, -5, 0.3), NewVec3(0, 1, 0))

	// Entry and exit of the zero-width y slab coincide
	require.False(t, flat.Hit(ray, Universe()))
	require.True(t, flat.Pad().Hit(ray, Universe()))
}

func TestAABB_HitSymmetricUnderReversal(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	randomVec := func(scale float64) Vec3 {
		return NewVec3(
			(random.Float64()*2-1)*scale,
			(random.Float64()*2-1)*scale,
			(random.Float64()*2-1)*scale,
		)
	}

	for i := 0; i < 2000; i++ {
		a := randomVec(3)
		box := NewAABBFromPoints(a, a.Add(randomVec(2)))
		origin := randomVec(6)
		dir := randomVec(1)
		if i%5 == 0 {
			dir.Y = 0 // exercise the infinite inverse path
		}

		forward := box.Hit(NewRay(origin, dir), Universe())
		backward := box.Hit(NewRay(origin, dir.Negate()), Universe())
		require.Equal(t, forward, backward, "box %v origin %v dir %v", box, origin, dir)
	}
}

func TestAABB_LongestAxisAndCenter(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 4, 2))

	require.Equal(t, 1, box.LongestAxis())
	require.Equal(t, NewVec3(0.5, 2, 1), box.Center())
}
