package bvh

import (
	"sync"

	"github.com/gazed/collide/geom"
)

// BuildParallelThreshold is the index-count above which BuildParallel forks the
// two recursive subtrees onto separate goroutines instead of recursing
// serially.
const BuildParallelThreshold = 1000

// longestExtentAxis picks the splitting axis as the dimension of
// greatest extent over the referenced AABBs, with ties broken in favor
// of Y over X and Z over X/Y. It returns the axis and the spatial
// median of the parent's extent along it.
func longestExtentAxis(indices []int, aabbs []geom.AABB) (axis int, midpoint float64) {
	min := aabbs[indices[0]].Min
	max := aabbs[indices[0]].Max
	for _, i := range indices[1:] {
		min = min.Inf(aabbs[i].Min)
		max = max.Sup(aabbs[i].Max)
	}
	extentX := max.X - min.X
	extentY := max.Y - min.Y
	extentZ := max.Z - min.Z

	axis = 2
	if extentX > extentY && extentX > extentZ {
		axis = 0
	} else if extentY > extentZ {
		axis = 1
	}

	lo, hi := min.Get(axis), max.Get(axis)
	return axis, 0.5 * (lo + hi)
}

// splitAtAxis partitions indices in place, Hoare-style, by the
// predicate center[axis] < midpoint, and returns the two segments as
// subslices of the original backing array.
func splitAtAxis(indices []int, aabbs []geom.AABB, axis int, midpoint float64) ([]int, []int) {
	i, j := 0, len(indices)-1
	for i <= j {
		for i <= j && aabbs[indices[i]].Center.Get(axis) < midpoint {
			i++
		}
		for i <= j && !(aabbs[indices[j]].Center.Get(axis) < midpoint) {
			j--
		}
		if i < j {
			indices[i], indices[j] = indices[j], indices[i]
			i++
			j--
		}
	}
	return indices[:i], indices[i:]
}

// Build recursively partitions indices by spatial median into a binary
// tree whose leaves hold at most cutOff indices each, except where a
// split leaves one side empty: those indices all go into a single leaf,
// whatever their count. indices is mutated in place.
func Build(indices []int, aabbs []geom.AABB, cutOff int) Node {
	if len(indices) == 0 {
		return &Leaf{}
	}
	if len(indices) <= cutOff {
		return newLeaf(indices, aabbs)
	}
	axis, mid := longestExtentAxis(indices, aabbs)
	left, right := splitAtAxis(indices, aabbs, axis, mid)
	if len(left) == 0 || len(right) == 0 {
		return newLeaf(indices, aabbs)
	}
	l := Build(left, aabbs, cutOff)
	r := Build(right, aabbs, cutOff)
	return &Internal{Box: l.AABB().Union(r.AABB()), Left: l, Right: r}
}

// BuildParallel is Build's fork-join variant: subtrees over more than
// BuildParallelThreshold indices are built concurrently.
func BuildParallel(indices []int, aabbs []geom.AABB, cutOff int) Node {
	if len(indices) == 0 {
		return &Leaf{}
	}
	n := len(indices)
	if n <= cutOff {
		return newLeaf(indices, aabbs)
	}
	axis, mid := longestExtentAxis(indices, aabbs)
	left, right := splitAtAxis(indices, aabbs, axis, mid)
	if len(left) == 0 || len(right) == 0 {
		return newLeaf(indices, aabbs)
	}

	if n > BuildParallelThreshold {
		var l, r Node
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			l = BuildParallel(left, aabbs, cutOff)
		}()
		go func() {
			defer wg.Done()
			r = BuildParallel(right, aabbs, cutOff)
		}()
		wg.Wait()
		return &Internal{Box: l.AABB().Union(r.AABB()), Left: l, Right: r}
	}

	l := BuildParallel(left, aabbs, cutOff)
	r := BuildParallel(right, aabbs, cutOff)
	return &Internal{Box: l.AABB().Union(r.AABB()), Left: l, Right: r}
}
