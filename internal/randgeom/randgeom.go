// Package randgeom generates random populations of shapes and poses for
// the correctness and benchmark command-line tools. It deliberately
// never constructs a convex hull from an arbitrary point cloud: shapes
// are either convex by construction (Cuboid, Sphere) or drawn from a
// small set of fixed-topology polyhedron templates with randomized
// scale.
package randgeom

import (
	"math/rand"

	"github.com/gazed/collide/geom"
	"github.com/gazed/collide/math/lin"
	"github.com/gazed/collide/shape"
)

// Bounds is an axis-aligned box that random translations are drawn from.
type Bounds struct {
	Min, Max lin.V3
}

func (b Bounds) sample(rng *rand.Rand) lin.V3 {
	return lin.V3{
		X: b.Min.X + rng.Float64()*(b.Max.X-b.Min.X),
		Y: b.Min.Y + rng.Float64()*(b.Max.Y-b.Min.Y),
		Z: b.Min.Z + rng.Float64()*(b.Max.Z-b.Min.Z),
	}
}

func randomPose(rng *rand.Rand, bounds Bounds) geom.Pose {
	loc := bounds.sample(rng)
	axis := lin.V3{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1, Z: rng.Float64()*2 - 1}
	if axis.LenSqr() == 0 {
		axis = lin.V3{X: 1}
	}
	angle := rng.Float64() * 2 * 3.14159265358979
	rot := lin.SetAa(axis.X, axis.Y, axis.Z, angle)
	return geom.NewPose(loc, rot)
}

func randomShape(rng *rand.Rand, minScale, maxScale float64) shape.Shape {
	scale := minScale + rng.Float64()*(maxScale-minScale)
	switch rng.Intn(4) {
	case 0:
		return shape.Cuboid{HalfExtents: lin.V3{X: scale, Y: scale * (0.6 + rng.Float64()), Z: scale * (0.6 + rng.Float64())}}
	case 1:
		return shape.Sphere{Radius: scale}
	case 2:
		return shape.RegularTetrahedron(scale)
	default:
		return shape.BoxHull(lin.V3{X: scale, Y: scale, Z: scale})
	}
}

// Population generates n shapes and poses: poses are uniformly sampled
// within bounds, shapes are uniformly drawn from Cuboid, Sphere,
// RegularTetrahedron, and BoxHull with scale in [minScale, maxScale].
func Population(rng *rand.Rand, n int, bounds Bounds, minScale, maxScale float64) ([]shape.Shape, []geom.Pose) {
	shapes := make([]shape.Shape, n)
	poses := make([]geom.Pose, n)
	for i := 0; i < n; i++ {
		shapes[i] = randomShape(rng, minScale, maxScale)
		poses[i] = randomPose(rng, bounds)
	}
	return shapes, poses
}
