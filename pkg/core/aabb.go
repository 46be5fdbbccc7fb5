package core

import "fmt"

// aabbPadding is the minimum thickness of each axis of a padded box
const aabbPadding = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

var (
	// EmptyAABB bounds nothing and is the identity for UnionAABB
	EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}
	// UniverseAABB bounds all of space
	UniverseAABB = AABB{X: UniverseInterval, Y: UniverseInterval, Z: UniverseInterval}
)

// NewAABB creates a new AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates the AABB with a and b as opposite corners.
// The corners may be given in any order.
func NewAABBFromPoints(a, b Vec3) AABB {
	return AABB{
		X: NewInterval(min(a.X, b.X), max(a.X, b.X)),
		Y: NewInterval(min(a.Y, b.Y), max(a.Y, b.Y)),
		Z: NewInterval(min(a.Z, b.Z), max(a.Z, b.Z)),
	}
}

// UnionAABB returns the AABB that bounds both a and b
func UnionAABB(a, b AABB) AABB {
	return AABB{
		X: UnionInterval(a.X, b.X),
		Y: UnionInterval(a.Y, b.Y),
		Z: UnionInterval(a.Z, b.Z),
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return UnionAABB(aabb, other)
}

// Axis returns the interval for axis 0 (X), 1 (Y) or 2 (Z).
// Any other index is a programming error and panics.
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		panic(fmt.Sprintf("core: invalid AABB axis %d", axis))
	}
}

// Pad returns a copy where no axis is thinner than aabbPadding, so planar
// shapes still produce a box the slab test can hit.
func (aabb AABB) Pad() AABB {
	pad := func(i Interval) Interval {
		if i.Size() < aabbPadding {
			return i.Expand(aabbPadding)
		}
		return i
	}
	return AABB{X: pad(aabb.X), Y: pad(aabb.Y), Z: pad(aabb.Z)}
}

// Translate returns the AABB moved by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Add(offset.X),
		Y: aabb.Y.Add(offset.Y),
		Z: aabb.Z.Add(offset.Z),
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)*0.5,
		(aabb.Y.Min+aabb.Y.Max)*0.5,
		(aabb.Z.Min+aabb.Z.Max)*0.5,
	)
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	x, y, z := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if x > y && x > z {
		return 0
	}
	if y > z {
		return 1
	}
	return 2
}

// Hit tests if a ray intersects the AABB within rayT using the slab method.
//
// A zero direction component yields an infinite inverse; the resulting
// infinities order correctly against the running bounds, and a NaN slab
// (origin exactly on a face of a zero-direction axis) leaves the bounds as
// they were instead of poisoning them.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	tMin, tMax := rayT.Min, rayT.Max

	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		origin := ray.Origin.Axis(axis)
		invD := 1.0 / ray.Direction.Axis(axis)

		t0 := (slab.Min - origin) * invD
		t1 := (slab.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer
func (aabb AABB) String() string {
	return fmt.Sprintf("AABB{x:[%g,%g] y:[%g,%g] z:[%g,%g]}",
		aabb.X.Min, aabb.X.Max, aabb.Y.Min, aabb.Y.Max, aabb.Z.Min, aabb.Z.Max)
}
