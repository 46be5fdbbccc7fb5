package geometry

import (
	"math"

	"github.com/df07/go-volume-raytracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3     // One corner of the quad
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Unit normal (direction of U × V)
	Material core.Material // Material of the quad
	D        float64       // Plane equation constant: normal · x = d
	W        core.Vec3     // n / (n · n) with n = U × V, for planar coordinates
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	boxDiagonal1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	boxDiagonal2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        n.Divide(n.Dot(n)),
		bbox:     core.UnionAABB(boxDiagonal1, boxDiagonal2).Pad(),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, _ core.Sampler) (*core.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	// Planar coordinates of the hit point relative to the corner
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	if !core.UnitInterval.Contains(alpha) || !core.UnitInterval.Contains(beta) {
		return nil, false
	}

	return core.NewHitRecord(ray, t, q.Normal, q.Material, alpha, beta), true
}

// BoundingBox returns the padded bounding box of the quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
