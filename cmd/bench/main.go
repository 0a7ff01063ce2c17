// Command bench generates a random population and times
// collide.SerialCollide against collide.ParallelCollide, reporting
// wall-clock elapsed time for each.
package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gazed/collide"
	"github.com/gazed/collide/internal/randgeom"
	"github.com/gazed/collide/math/lin"
)

func main() {
	n := flag.Int("n", 20000, "population size")
	cutOff := flag.Int("cutoff", 16, "BVH leaf capacity")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	bounds := randgeom.Bounds{Min: lin.V3{X: -50, Y: -50, Z: -50}, Max: lin.V3{X: 50, Y: 50, Z: 50}}
	shapes, poses := randgeom.Population(rng, *n, bounds, 0.1, 0.5)

	start := time.Now()
	serial := collide.SerialCollide(shapes, poses, *cutOff)
	serialElapsed := time.Since(start)

	start = time.Now()
	parallel := collide.ParallelCollide(shapes, poses, *cutOff)
	parallelElapsed := time.Since(start)

	slog.Info("bench complete",
		"population", *n,
		"serial_contacts", len(serial), "serial_elapsed", serialElapsed,
		"parallel_contacts", len(parallel), "parallel_elapsed", parallelElapsed,
	)
}
