package geometry

import (
	"github.com/df07/go-volume-raytracer/pkg/core"
)

// NewBox returns the six quad faces of the axis-aligned box with opposite
// corners a and b. The faces share the material and their normals point out
// of the box.
func NewBox(a, b core.Vec3, material core.Material) *HittableList {
	lo := core.NewVec3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z))
	hi := core.NewVec3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z))

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	return NewHittableList(
		NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy, material),          // front
		NewQuad(core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy, material), // right
		NewQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy, material), // back
		NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy, material),          // left
		NewQuad(core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate(), material), // top
		NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz, material),          // bottom
	)
}
