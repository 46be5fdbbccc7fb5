package geometry

import (
	"cmp"
	"slices"

	"github.com/df07/go-volume-raytracer/pkg/core"
)

// BVHNode is a node in a bounding volume hierarchy. Leaves are not stored
// separately: a node built from a single object has that object as both
// children.
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	bbox  core.AABB
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	Nodes    int // Interior BVH nodes
	Leaves   int // Distinct non-BVH children
	MaxDepth int // Depth of the deepest node, the root being 1
}

// NewBVHNode builds a hierarchy over objects. The split axis at every node
// is drawn from sampler, so a seeded sampler gives a reproducible tree. The
// caller's slice is not reordered. Building from no objects panics.
func NewBVHNode(objects []core.Hittable, sampler core.Sampler) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: cannot build a BVH from zero objects")
	}

	return buildBVH(slices.Clone(objects), sampler)
}

// NewBVHFromList builds a hierarchy over the objects of a list
func NewBVHFromList(list *HittableList, sampler core.Sampler) *BVHNode {
	return NewBVHNode(list.Objects(), sampler)
}

func buildBVH(objects []core.Hittable, sampler core.Sampler) *BVHNode {
	axis := core.RandomInt(sampler, 0, 2)
	byAxisMin := func(a, b core.Hittable) int {
		return cmp.Compare(a.BoundingBox().Axis(axis).Min, b.BoundingBox().Axis(axis).Min)
	}

	node := &BVHNode{}

	switch n := len(objects); n {
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		if byAxisMin(objects[0], objects[1]) <= 0 {
			node.Left, node.Right = objects[0], objects[1]
		} else {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		slices.SortStableFunc(objects, byAxisMin)
		mid := n / 2
		node.Left = buildBVH(objects[:mid], sampler)
		node.Right = buildBVH(objects[mid:], sampler)
	}

	node.bbox = core.UnionAABB(node.Left.BoundingBox(), node.Right.BoundingBox())
	return node
}

// Hit tests the children only when the ray meets this node's box. The right
// child is searched no further than the left child's hit, and its hit wins
// when present.
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftRec, hitLeft := n.Left.Hit(ray, rayT, sampler)

	rightT := rayT
	if hitLeft {
		rightT = core.NewInterval(rayT.Min, leftRec.T)
	}
	if rightRec, hitRight := n.Right.Hit(ray, rightT, sampler); hitRight {
		return rightRec, true
	}

	return leftRec, hitLeft
}

// BoundingBox returns the union of both children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// Stats walks the hierarchy and reports its size
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(&stats, 1)
	return stats
}

func (n *BVHNode) collectStats(stats *BVHStats, depth int) {
	stats.Nodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	children := []core.Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}

	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(stats, depth+1)
		} else {
			stats.Leaves++
		}
	}
}
