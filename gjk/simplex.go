package gjk

import (
	"math"

	"github.com/gazed/collide/math/lin"
)

// Simplex is an ordered set of 1-4 points in Minkowski-difference space,
// maintained across a single Contact call.
type Simplex struct {
	Points [4]lin.V3
	Len    int
}

// Add appends a point to the simplex.
func (s *Simplex) Add(p lin.V3) {
	s.Points[s.Len] = p
	s.Len++
}

func (s *Simplex) set(pts []lin.V3) {
	s.Len = len(pts)
	copy(s.Points[:], pts)
}

// feature is a candidate closest-point result from one sub-simplex:
// the closest point v, the points of the simplex it came from, and
// its distance to the origin.
type feature struct {
	v   lin.V3
	pts []lin.V3
	d   float64
}

// min keeps f when f.d < g.d, else g — a strict less-than so that on
// an exact tie the later operand wins. Reduction chains rely on this
// order for determinism; which feature wins a true tie is otherwise
// unspecified (see the closest-feature tie-break note in the GJK
// engine's design).
func min(f, g feature) feature {
	if f.d < g.d {
		return f
	}
	return g
}

func closestOnLine(a, b lin.V3) feature {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	t := 0.0
	if denom != 0 {
		t = -a.Dot(ab) / denom
	}
	t = lin.Clamp(t, 0, 1)
	closest := a.Add(ab.Scale(t))
	return feature{v: closest, pts: []lin.V3{a, b}, d: closest.Len()}
}

func closestOnTriangle(a, b, c lin.V3) feature {
	ab, ac, ao := b.Sub(a), c.Sub(a), a.Neg()
	d1, d2 := ab.Dot(ao), ac.Dot(ao)
	d00, d01, d11 := ab.Dot(ab), ab.Dot(ac), ac.Dot(ac)
	denom := d00*d11 - d01*d01
	u := (d11*d1 - d01*d2) / denom
	v := (d00*d2 - d01*d1) / denom
	if u > 0 && v > 0 && u+v < 1 {
		closest := b.Scale(u).Add(c.Scale(v)).Add(a.Scale(1 - u - v))
		return feature{v: closest, pts: []lin.V3{a, b, c}, d: closest.Len()}
	}
	e1 := closestOnLine(a, b)
	e2 := closestOnLine(b, c)
	e3 := closestOnLine(a, c)
	return min(min(e3, e2), e1)
}

func closestOnTetrahedron(a, b, c, d lin.V3) feature {
	f1 := closestOnTriangle(a, b, c)
	f2 := closestOnTriangle(a, b, d)
	f3 := closestOnTriangle(a, c, d)
	f4 := closestOnTriangle(b, c, d)
	return min(min(min(f4, f3), f2), f1)
}

func signedVolume(a, b, c, d lin.V3) float64 {
	return b.Sub(a).Cross(c.Sub(a)).Dot(d.Sub(a))
}

// containsOrigin reports whether tetrahedron abcd contains the origin,
// within ProximityTol. A near-zero volume tetrahedron is declared non-containing.
func containsOrigin(a, b, c, d lin.V3) bool {
	vol := signedVolume(a, b, c, d)
	if math.Abs(vol) < ProximityTol {
		return false
	}
	var zero lin.V3
	v1 := signedVolume(zero, b, c, d)
	v2 := signedVolume(a, zero, c, d)
	v3 := signedVolume(a, b, zero, d)
	v4 := signedVolume(a, b, c, zero)
	if vol > 0 {
		return v1 > -ProximityTol && v2 > -ProximityTol && v3 > -ProximityTol && v4 > -ProximityTol
	}
	return v1 < ProximityTol && v2 < ProximityTol && v3 < ProximityTol && v4 < ProximityTol
}

// Reduce reduces the simplex to the sub-feature closest to the origin,
// updating s in place, and returns that feature's point and distance.
// A 4-point simplex whose tetrahedron contains the origin returns the
// origin and a distance of exactly 0, leaving s unchanged.
func (s *Simplex) Reduce() (lin.V3, float64) {
	switch s.Len {
	case 1:
		return s.Points[0], s.Points[0].Len()
	case 2:
		f := closestOnLine(s.Points[0], s.Points[1])
		s.set(f.pts)
		return f.v, f.d
	case 3:
		f := closestOnTriangle(s.Points[0], s.Points[1], s.Points[2])
		s.set(f.pts)
		return f.v, f.d
	default:
		a, b, c, d := s.Points[0], s.Points[1], s.Points[2], s.Points[3]
		if containsOrigin(a, b, c, d) {
			return lin.V3{}, 0
		}
		f := closestOnTetrahedron(a, b, c, d)
		s.set(f.pts)
		return f.v, f.d
	}
}
