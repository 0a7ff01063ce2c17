// Package geom provides the rigid transform and axis-aligned bounding box
// types shared by every shape and collision-detection package.
package geom

import "github.com/gazed/collide/math/lin"

// Pose is a rigid transform: a unit-quaternion rotation followed by a
// translation. It excludes scaling and shear.
type Pose struct {
	Rot lin.Q
	Loc lin.V3
}

// Identity is the pose with no rotation and no translation.
var Identity = Pose{Rot: lin.QI}

// Apply rotates then translates point v by the pose.
func (p Pose) Apply(v lin.V3) lin.V3 {
	return p.Rot.Rotate(v).Add(p.Loc)
}

// ApplyInverse undoes Apply: inverse-translate then inverse-rotate.
func (p Pose) ApplyInverse(v lin.V3) lin.V3 {
	return p.Rot.Inv().Rotate(v.Sub(p.Loc))
}

// NewPose returns a pose with the given translation and rotation.
func NewPose(loc lin.V3, rot lin.Q) Pose { return Pose{Rot: rot, Loc: loc} }
