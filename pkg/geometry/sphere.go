package geometry

import (
	"math"

	"github.com/df07/go-volume-raytracer/pkg/core"
)

// Sphere represents a sphere shape. A moving sphere travels linearly from
// its center at time 0 to its center at time 1.
type Sphere struct {
	Center   core.Ray // Origin is the center at time 0, Direction the motion over one shutter interval
	Radius   float64
	Material core.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere. Negative radii are clamped to zero.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	radius = max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)

	return &Sphere{
		Center:   core.NewRay(center, core.NewVec3(0, 0, 0)),
		Radius:   radius,
		Material: material,
		bbox:     core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere moving from center1 at time 0 to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material core.Material) *Sphere {
	radius = max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	box2 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))

	return &Sphere{
		Center:   core.NewRay(center1, center2.Subtract(center1)),
		Radius:   radius,
		Material: material,
		bbox:     core.UnionAABB(box1, box2),
	}
}

// CenterAt returns the sphere center at the given shutter time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.At(time)
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, _ core.Sampler) (*core.HitRecord, bool) {
	center := s.CenterAt(ray.Time)

	// Vector from ray origin to sphere center
	oc := center.Subtract(ray.Origin)

	// Quadratic equation coefficients with b = -2h
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Nearest root that lies strictly inside the interval
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Divide(s.Radius)
	u, v := SphereUV(outwardNormal)

	return core.NewHitRecord(ray, root, outwardNormal, s.Material, u, v), true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// SphereUV maps a point on the unit sphere to texture coordinates.
// u in [0,1] is the angle around the Y axis from X=-1, v in [0,1] the angle
// from Y=-1 to Y=+1.
func SphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return phi / (2 * math.Pi), theta / math.Pi
}
