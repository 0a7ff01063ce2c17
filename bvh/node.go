// Package bvh builds a bounding-volume hierarchy over per-shape AABBs
// and performs the broad-phase tree-vs-tree descent that emits
// candidate overlapping pairs.
package bvh

import "github.com/gazed/collide/geom"

// Node is a BVH node: either an Internal node with two children or a
// Leaf holding the shape indices it covers. The concrete types below
// are the only implementations; switch on their dynamic type, not on
// a discriminant field.
type Node interface {
	AABB() geom.AABB
	IsLeaf() bool
}

// Internal is a non-leaf node; its AABB is the union of its children's.
type Internal struct {
	Box         geom.AABB
	Left, Right Node
}

func (n *Internal) AABB() geom.AABB { return n.Box }
func (n *Internal) IsLeaf() bool    { return false }

// Leaf holds a set of shape indices and the union of their AABBs. The
// set is non-empty except for the zero Leaf that Build and
// BuildParallel return for empty input.
type Leaf struct {
	Box     geom.AABB
	Indices []int
}

func (n *Leaf) AABB() geom.AABB { return n.Box }
func (n *Leaf) IsLeaf() bool    { return true }

func newLeaf(indices []int, aabbs []geom.AABB) *Leaf {
	box := aabbs[indices[0]]
	for _, i := range indices[1:] {
		box = box.Union(aabbs[i])
	}
	owned := make([]int, len(indices))
	copy(owned, indices)
	return &Leaf{Box: box, Indices: owned}
}
