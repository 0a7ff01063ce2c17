package shape

import (
	"github.com/gazed/collide/geom"
	"github.com/gazed/collide/math/lin"
)

// Sphere is centered at the pose's translation; Radius is in local
// (unscaled) units. Support and AABB are rotation-invariant.
type Sphere struct {
	Radius float64
}

// Support returns the point on the sphere surface farthest along dir.
func (s Sphere) Support(dir lin.V3, pose geom.Pose) lin.V3 {
	return pose.Loc.Add(dir.Unit().Scale(s.Radius))
}

// AABB returns the sphere's bounding box: center +/- Radius on every
// axis.
func (s Sphere) AABB(pose geom.Pose) geom.AABB {
	r := lin.V3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return geom.NewAABB(pose.Loc.Sub(r), pose.Loc.Add(r))
}
