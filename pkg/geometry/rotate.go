package geometry

import (
	"math"

	"github.com/df07/go-volume-raytracer/pkg/core"
)

// RotateY is an instance of an object rotated about the world Y axis
type RotateY struct {
	Object   core.Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY creates an instance of object rotated by angle degrees about Y.
// Positive angles turn X toward -Z.
func NewRotateY(object core.Hittable, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Bound the eight rotated corners of the object's box
	inner := object.BoundingBox()
	lo := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					pick(inner.X, i),
					pick(inner.Y, j),
					pick(inner.Z, k),
				)
				rotated := r.toWorld(corner)

				lo = core.NewVec3(min(lo.X, rotated.X), min(lo.Y, rotated.Y), min(lo.Z, rotated.Z))
				hi = core.NewVec3(max(hi.X, rotated.X), max(hi.Y, rotated.Y), max(hi.Z, rotated.Z))
			}
		}
	}

	r.bbox = core.NewAABB(
		core.NewInterval(lo.X, hi.X),
		core.NewInterval(lo.Y, hi.Y),
		core.NewInterval(lo.Z, hi.Z),
	)
	return r
}

func pick(i core.Interval, upper int) float64 {
	if upper == 1 {
		return i.Max
	}
	return i.Min
}

// toObject rotates a world-space vector into object space
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates an object-space vector into world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, intersects, and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	rotated := core.NewRayWithTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	rec, ok := r.Object.Hit(rotated, rayT, sampler)
	if !ok {
		return nil, false
	}

	rec.Point = r.toWorld(rec.Point)
	rec.Normal = r.toWorld(rec.Normal)
	return rec, true
}

// BoundingBox returns the box enclosing the rotated object's box
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
