// Package shape defines the convex-shape contract the GJK and BVH
// packages build on, plus a small closed set of shape variants.
package shape

import (
	"github.com/gazed/collide/geom"
	"github.com/gazed/collide/math/lin"
)

// Shape is a convex body offering a support function and a world-space
// AABB under a pose. Callers need not pass a unit direction: Support
// must handle non-unit dir.
type Shape interface {
	// Support returns the extreme point of the shape in direction dir
	// after pose is applied. Ties may be broken arbitrarily but must
	// be deterministic per invocation.
	Support(dir lin.V3, pose geom.Pose) lin.V3

	// AABB returns a world-space bounding box, tight enough for
	// correctness, under pose.
	AABB(pose geom.Pose) geom.AABB
}
