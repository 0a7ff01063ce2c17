package shape

import (
	"math"

	"github.com/gazed/collide/geom"
	"github.com/gazed/collide/math/lin"
)

// ConvexPolyhedron is a convex hull given by its vertex set and
// triangular face indices. Hull construction (deriving this from an
// arbitrary point cloud) is out of scope; callers supply an already
// convex hull.
type ConvexPolyhedron struct {
	Vertices []lin.V3
	Faces    [][3]int
}

// NewConvexPolyhedron wraps a vertex set and its triangular faces.
// Panics if vertices is empty: Support has no sane zero value to return.
func NewConvexPolyhedron(vertices []lin.V3, faces [][3]int) *ConvexPolyhedron {
	if len(vertices) == 0 {
		panic("shape: ConvexPolyhedron requires at least one vertex")
	}
	return &ConvexPolyhedron{Vertices: vertices, Faces: faces}
}

// Support returns R*argmax_{v in Vertices}((R⁻¹·dir)·v) + t.
func (c *ConvexPolyhedron) Support(dir lin.V3, pose geom.Pose) lin.V3 {
	localDir := pose.Rot.Inv().Rotate(dir)
	best := c.Vertices[0]
	bestDot := best.Dot(localDir)
	for _, v := range c.Vertices[1:] {
		if d := v.Dot(localDir); d > bestDot {
			best, bestDot = v, d
		}
	}
	return pose.Apply(best)
}

// AABB transforms every vertex and takes the componentwise min/max.
func (c *ConvexPolyhedron) AABB(pose geom.Pose) geom.AABB {
	first := pose.Apply(c.Vertices[0])
	min, max := first, first
	for _, v := range c.Vertices[1:] {
		w := pose.Apply(v)
		min, max = min.Inf(w), max.Sup(w)
	}
	return geom.NewAABB(min, max)
}

// RegularTetrahedron returns a regular tetrahedron centered on the
// origin with its vertices at distance scale from it, one of the fixed-topology templates random-geometry
// generation draws from in place of general hull construction.
func RegularTetrahedron(scale float64) *ConvexPolyhedron {
	verts := []lin.V3{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	for i := range verts {
		verts[i] = verts[i].Scale(scale / math.Sqrt(3))
	}
	faces := [][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	return NewConvexPolyhedron(verts, faces)
}

// BoxHull returns an axis-aligned box expressed as a ConvexPolyhedron
// (8 vertices, 12 triangular faces) rather than as a Cuboid: used by
// random-geometry generation to exercise the polyhedron support path
// with box-shaped data.
func BoxHull(halfExtents lin.V3) *ConvexPolyhedron {
	hx, hy, hz := halfExtents.X, halfExtents.Y, halfExtents.Z
	// vertex index = sxBit*4 + syBit*2 + szBit, bit 0 for the negative
	// side of an axis, 1 for the positive side.
	verts := []lin.V3{
		{X: -hx, Y: -hy, Z: -hz}, // 0
		{X: -hx, Y: -hy, Z: hz},  // 1
		{X: -hx, Y: hy, Z: -hz},  // 2
		{X: -hx, Y: hy, Z: hz},   // 3
		{X: hx, Y: -hy, Z: -hz},  // 4
		{X: hx, Y: -hy, Z: hz},   // 5
		{X: hx, Y: hy, Z: -hz},   // 6
		{X: hx, Y: hy, Z: hz},    // 7
	}
	faces := [][3]int{
		{0, 1, 3}, {0, 3, 2}, // -X
		{4, 6, 7}, {4, 7, 5}, // +X
		{0, 4, 5}, {0, 5, 1}, // -Y
		{2, 3, 7}, {2, 7, 6}, // +Y
		{0, 2, 6}, {0, 6, 4}, // -Z
		{1, 5, 7}, {1, 7, 3}, // +Z
	}
	return NewConvexPolyhedron(verts, faces)
}
