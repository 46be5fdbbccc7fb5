package geometry

import (
	"github.com/df07/go-volume-raytracer/pkg/core"
)

// HittableList is an ordered collection of hittables tested by linear search
type HittableList struct {
	objects []core.Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the bounding box to include it
func (l *HittableList) Add(object core.Hittable) {
	l.objects = append(l.objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
}

// Clear removes all objects
func (l *HittableList) Clear() {
	l.objects = nil
	l.bbox = core.EmptyAABB
}

// Objects returns the objects in insertion order. The slice is shared with
// the list and must not be modified.
func (l *HittableList) Objects() []core.Hittable {
	return l.objects
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Hit returns the closest hit over all objects
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.objects {
		if rec, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
			closest = rec
			closestSoFar = rec.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of the objects' boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
