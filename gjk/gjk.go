// Package gjk implements the Gilbert-Johnson-Keerthi distance test
// between two convex shapes: the closest point to the origin on their
// Minkowski difference, reduced through a 1-to-4-point simplex.
package gjk

import (
	"log/slog"

	"github.com/gazed/collide/geom"
	"github.com/gazed/collide/math/lin"
	"github.com/gazed/collide/shape"
)

// ProximityTol bounds the tetrahedron-containment and early-exit tests.
const ProximityTol = 1e-6

// ProximityMaxIters bounds the simplex-growth loop.
const ProximityMaxIters = 100

// Contact returns (direction, distance) between shapes sa and sb under
// poses pa, pb. distance == 0 signals intersection; otherwise direction
// is the unit separating direction from sb toward sa.
//
// The search direction's sign flips between the initial support and the
// one computed inside the loop below; this mirrors the source this
// algorithm was built from and is load-bearing for matching its test
// oracle, not an accident to be "fixed".
func Contact(sa shape.Shape, pa geom.Pose, sb shape.Shape, pb geom.Pose) (lin.V3, float64) {
	diff := pa.Loc.Sub(pb.Loc)
	var dir lin.V3
	if diff.LenSqr() > ProximityTol {
		dir = diff.Unit()
	} else {
		dir = lin.V3{X: 1}
	}

	support := sa.Support(dir, pa).Sub(sb.Support(dir.Neg(), pb))
	simplex := Simplex{}
	simplex.Add(support)
	dist := support.Len()

	for iter := 0; iter < ProximityMaxIters; iter++ {
		dir, dist = simplex.Reduce()
		if dist < ProximityTol && simplex.Len == 4 {
			return lin.V3{}, 0
		}
		dir = dir.Unit()

		next := sa.Support(dir.Neg(), pa).Sub(sb.Support(dir, pb))
		proj := next.Dot(dir)
		if dist < proj+ProximityTol {
			return dir, dist
		}
		simplex.Add(next)
	}

	slog.Debug("gjk: iteration limit reached, returning best effort", "iters", ProximityMaxIters, "dist", dist)
	return dir, dist
}
