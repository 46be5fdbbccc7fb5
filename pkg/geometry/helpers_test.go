package geometry

import (
	"github.com/df07/go-volume-raytracer/pkg/core"
)

// recordingHittable reports a hit at a fixed t whenever the interval allows
// it and remembers every interval it was asked about.
type recordingHittable struct {
	t         float64
	box       core.AABB
	intervals []core.Interval
}

func newRecordingHittable(t float64, box core.AABB) *recordingHittable {
	return &recordingHittable{t: t, box: box}
}

func (r *recordingHittable) Hit(ray core.Ray, rayT core.Interval, _ core.Sampler) (*core.HitRecord, bool) {
	r.intervals = append(r.intervals, rayT)
	if !rayT.Contains(r.t) {
		return nil, false
	}
	return core.NewHitRecord(ray, r.t, core.NewVec3(0, 0, -1), nil, 0, 0), true
}

func (r *recordingHittable) BoundingBox() core.AABB {
	return r.box
}

// alwaysHit claims a hit for every ray, whatever its box says
type alwaysHit struct {
	box   core.AABB
	calls int
}

func (a *alwaysHit) Hit(ray core.Ray, rayT core.Interval, _ core.Sampler) (*core.HitRecord, bool) {
	a.calls++
	return core.NewHitRecord(ray, rayT.Min, core.NewVec3(0, 1, 0), nil, 0, 0), true
}

func (a *alwaysHit) BoundingBox() core.AABB {
	return a.box
}

func unitBoxAt(center core.Vec3) core.AABB {
	half := core.NewVec3(0.5, 0.5, 0.5)
	return core.NewAABBFromPoints(center.Subtract(half), center.Add(half))
}

var forward = core.NewInterval(0.001, 1e30)
