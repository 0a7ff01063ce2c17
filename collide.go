// Package collide is the top-level collision-detection pipeline: AABB
// precomputation, BVH construction, broad-phase pair enumeration, and
// narrow-phase contact generation, in serial or parallel form.
package collide

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/gazed/collide/bvh"
	"github.com/gazed/collide/geom"
	"github.com/gazed/collide/gjk"
	"github.com/gazed/collide/narrow"
	"github.com/gazed/collide/shape"
)

// Re-exported tuning constants, per the external interface.
const (
	ProximityTol           = gjk.ProximityTol
	ProximityMaxIters      = gjk.ProximityMaxIters
	BuildParallelThreshold = bvh.BuildParallelThreshold
	BroadMaxDepth          = bvh.BroadMaxDepth
)

func checkLengths(shapes []shape.Shape, poses []geom.Pose) {
	if len(shapes) != len(poses) {
		panic(fmt.Sprintf("collide: %d shapes but %d poses", len(shapes), len(poses)))
	}
}

func computeAABBs(shapes []shape.Shape, poses []geom.Pose) []geom.AABB {
	out := make([]geom.AABB, len(shapes))
	for i := range shapes {
		out[i] = shapes[i].AABB(poses[i])
	}
	return out
}

// computeAABBsParallel maps shapes[i].AABB(poses[i]) across GOMAXPROCS
// workers. The output slice is written once per index by exactly one
// worker, so no synchronization is needed beyond the join.
func computeAABBsParallel(shapes []shape.Shape, poses []geom.Pose) []geom.AABB {
	n := len(shapes)
	out := make([]geom.AABB, n)
	if n == 0 {
		return out
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunkSize := (n + workers - 1) / workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = shapes[i].AABB(poses[i])
			}
		}(start, end)
	}
	wg.Wait()
	return out
}

func identityIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// SerialCollide runs the full pipeline without concurrency: AABB
// precomputation, BVH build, broad phase, narrow phase.
func SerialCollide(shapes []shape.Shape, poses []geom.Pose, cutOff int) []narrow.Contact {
	checkLengths(shapes, poses)
	if len(shapes) == 0 {
		return nil
	}
	boxes := computeAABBs(shapes, poses)
	root := bvh.Build(identityIndices(len(shapes)), boxes, cutOff)
	pairs := bvh.BroadPhase(root, root)
	return narrow.Phase(pairs, shapes, poses)
}

// ParallelCollide runs the same pipeline as SerialCollide with every
// region's parallel variant. Produces the same contact set as
// SerialCollide, as an unordered collection.
func ParallelCollide(shapes []shape.Shape, poses []geom.Pose, cutOff int) []narrow.Contact {
	checkLengths(shapes, poses)
	if len(shapes) == 0 {
		return nil
	}
	boxes := computeAABBsParallel(shapes, poses)
	root := bvh.BuildParallel(identityIndices(len(shapes)), boxes, cutOff)
	pairs := bvh.BroadPhaseParallel(root, root)
	return narrow.PhaseParallel(pairs, shapes, poses)
}
