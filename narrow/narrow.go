// Package narrow fans the GJK distance test across a candidate-pair
// list produced by the broad phase, emitting a contact per intersecting
// pair.
package narrow

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/gazed/collide/bvh"
	"github.com/gazed/collide/geom"
	"github.com/gazed/collide/gjk"
	"github.com/gazed/collide/math/lin"
	"github.com/gazed/collide/shape"
)

// Contact is a reported intersection between shapes I and J, I < J.
// Normal is the GJK separating direction (the zero vector on
// intersection) and Depth is its distance, always 0 for a reported
// contact since separated pairs are not emitted.
type Contact struct {
	I, J   int
	Normal lin.V3
	Depth  float64
}

func checkLengths(shapes []shape.Shape, poses []geom.Pose) {
	if len(shapes) != len(poses) {
		panic(fmt.Sprintf("narrow: %d shapes but %d poses", len(shapes), len(poses)))
	}
}

// Phase runs gjk.Contact on every candidate pair and reports a Contact
// for each pair GJK finds to be intersecting.
func Phase(pairs []bvh.Pair, shapes []shape.Shape, poses []geom.Pose) []Contact {
	checkLengths(shapes, poses)
	var out []Contact
	for _, p := range pairs {
		dir, dist := gjk.Contact(shapes[p.I], poses[p.I], shapes[p.J], poses[p.J])
		if dist == 0 {
			out = append(out, Contact{I: p.I, J: p.J, Normal: dir, Depth: dist})
		}
	}
	return out
}

// PhaseParallel is Phase's fork-join variant: the pair list is split
// across GOMAXPROCS workers, each accumulating into its own buffer,
// concatenated once all workers finish.
func PhaseParallel(pairs []bvh.Pair, shapes []shape.Shape, poses []geom.Pose) []Contact {
	checkLengths(shapes, poses)
	if len(pairs) == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(pairs) {
		workers = len(pairs)
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (len(pairs) + workers - 1) / workers
	chunks := make([][]Contact, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if start > len(pairs) {
			start = len(pairs)
		}
		if end > len(pairs) {
			end = len(pairs)
		}
		go func(w int, ps []bvh.Pair) {
			defer wg.Done()
			var local []Contact
			for _, p := range ps {
				dir, dist := gjk.Contact(shapes[p.I], poses[p.I], shapes[p.J], poses[p.J])
				if dist == 0 {
					local = append(local, Contact{I: p.I, J: p.J, Normal: dir, Depth: dist})
				}
			}
			chunks[w] = local
		}(w, pairs[start:end])
	}
	wg.Wait()

	var out []Contact
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
