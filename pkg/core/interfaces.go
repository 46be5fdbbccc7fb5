package core

// Hittable is implemented by everything a ray can intersect: primitives,
// transforms, volumes and acceleration structures alike.
//
// Hit reports the closest intersection with t inside rayT. The sampler is the
// caller's random source; only stochastic hittables (participating media)
// draw from it. Implementations must not mutate themselves, so a scene graph
// can be shared by any number of goroutines as long as each passes its own
// sampler.
type Hittable interface {
	Hit(ray Ray, rayT Interval, sampler Sampler) (*HitRecord, bool)
	BoundingBox() AABB
}

// Material decides how a ray is scattered at a surface
type Material interface {
	Scatter(rayIn Ray, hit *HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emitted(u, v float64, point Vec3) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always facing against the ray
	Material  Material // Shared material of the hit object
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface coordinates for texturing
	FrontFace bool     // Whether ray hit the front face
}

// NewHitRecord builds a record for a hit at t, orienting outwardNormal
// (assumed unit length) against the ray.
func NewHitRecord(ray Ray, t float64, outwardNormal Vec3, mat Material, u, v float64) *HitRecord {
	rec := &HitRecord{
		Point:    ray.At(t),
		Material: mat,
		T:        t,
		U:        u,
		V:        v,
	}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
