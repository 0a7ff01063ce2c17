package shape

import (
	"github.com/gazed/collide/geom"
	"github.com/gazed/collide/math/lin"
)

// Cuboid is an axis-aligned (in its local frame) box given by its
// half-extents along X, Y, Z.
type Cuboid struct {
	HalfExtents lin.V3
}

func (c Cuboid) corner(i int) lin.V3 {
	sx, sy, sz := 1.0, 1.0, 1.0
	if i&4 == 0 {
		sx = -1
	}
	if i&2 == 0 {
		sy = -1
	}
	if i&1 == 0 {
		sz = -1
	}
	return lin.V3{X: sx * c.HalfExtents.X, Y: sy * c.HalfExtents.Y, Z: sz * c.HalfExtents.Z}
}

// Support returns R*argmax_{corner}((R⁻¹·dir)·corner) + t over the
// cuboid's 8 corners.
func (c Cuboid) Support(dir lin.V3, pose geom.Pose) lin.V3 {
	localDir := pose.Rot.Inv().Rotate(dir)
	best := c.corner(0)
	bestDot := best.Dot(localDir)
	for i := 1; i < 8; i++ {
		v := c.corner(i)
		if d := v.Dot(localDir); d > bestDot {
			best, bestDot = v, d
		}
	}
	return pose.Apply(best)
}

// AABB transforms all 8 corners and takes the componentwise min/max.
func (c Cuboid) AABB(pose geom.Pose) geom.AABB {
	first := pose.Apply(c.corner(0))
	min, max := first, first
	for i := 1; i < 8; i++ {
		w := pose.Apply(c.corner(i))
		min, max = min.Inf(w), max.Sup(w)
	}
	return geom.NewAABB(min, max)
}
