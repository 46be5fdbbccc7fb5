package geometry

import (
	"testing"

	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/stretchr/testify/require"
)

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()

	require.Zero(t, list.Len())
	require.Equal(t, core.EmptyAABB, list.BoundingBox())

	_, hit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), forward, nil)
	require.False(t, hit)
}

func TestHittableList_ReturnsClosest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, 3), 1, nil)
	far := NewSphere(core.NewVec3(0, 0, 10), 1, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	for _, list := range []*HittableList{
		NewHittableList(near, far),
		NewHittableList(far, near),
	} {
		rec, hit := list.Hit(ray, forward, nil)
		require.True(t, hit)
		require.InDelta(t, 2.0, rec.T, 1e-12)
	}
}

func TestHittableList_NarrowsInterval(t *testing.T) {
	box := unitBoxAt(core.NewVec3(0, 0, 0))
	first := newRecordingHittable(6, box)
	second := newRecordingHittable(4, box)
	third := newRecordingHittable(5, box)
	list := NewHittableList(first, second, third)

	rec, hit := list.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), forward, nil)
	require.True(t, hit)
	require.Equal(t, 4.0, rec.T)

	require.Equal(t, forward.Max, first.intervals[0].Max)
	require.Equal(t, 6.0, second.intervals[0].Max)
	require.Equal(t, 4.0, third.intervals[0].Max)
}

func TestHittableList_AddAndClear(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, 0), 1, nil))
	list.Add(NewSphere(core.NewVec3(4, 0, 0), 1, nil))

	require.Equal(t, 2, list.Len())
	require.Equal(t, core.NewVec3(-1, -1, -1), list.BoundingBox().Min())
	require.Equal(t, core.NewVec3(5, 1, 1), list.BoundingBox().Max())

	list.Clear()
	require.Zero(t, list.Len())
	require.Equal(t, core.EmptyAABB, list.BoundingBox())
}
