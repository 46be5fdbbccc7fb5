package geometry

import (
	"github.com/df07/go-volume-raytracer/pkg/core"
)

// Translate places an object at an offset without copying its geometry
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate creates an instance of object moved by offset
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit moves the ray into object space, intersects, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	offsetRay := core.NewRayWithTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	rec, ok := t.Object.Hit(offsetRay, rayT, sampler)
	if !ok {
		return nil, false
	}

	rec.Point = rec.Point.Add(t.Offset)
	return rec, true
}

// BoundingBox returns the translated box of the object
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}
