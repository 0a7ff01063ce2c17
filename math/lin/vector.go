// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// V3 is a 3D vector, or a point, depending on context.
type V3 struct {
	X, Y, Z float64
}

// NewV3 returns the zero vector.
func NewV3() V3 { return V3{} }

// Eq (==) returns true when v and a have identical components.
func (v V3) Eq(a V3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// Aeq (~=) returns true when v and a are almost-equal componentwise.
func (v V3) Aeq(a V3) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) }

// Add (+) returns v+a.
func (v V3) Add(a V3) V3 { return V3{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }

// Sub (-) returns v-a.
func (v V3) Sub(a V3) V3 { return V3{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }

// Neg returns -v.
func (v V3) Neg() V3 { return V3{-v.X, -v.Y, -v.Z} }

// Scale (*) returns v scaled by s.
func (v V3) Scale(s float64) V3 { return V3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and a.
func (v V3) Dot(a V3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Cross returns the cross product v×a.
func (v V3) Cross(a V3) V3 {
	return V3{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

// LenSqr returns the squared length of v.
func (v V3) LenSqr() float64 { return v.Dot(v) }

// Len returns the length of v.
func (v V3) Len() float64 { return math.Sqrt(v.LenSqr()) }

// Unit returns v normalized to unit length. The zero vector is returned
// unchanged.
func (v V3) Unit() V3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Inf returns the componentwise minimum of v and a.
func (v V3) Inf(a V3) V3 {
	return V3{math.Min(v.X, a.X), math.Min(v.Y, a.Y), math.Min(v.Z, a.Z)}
}

// Sup returns the componentwise maximum of v and a.
func (v V3) Sup(a V3) V3 {
	return V3{math.Max(v.X, a.X), math.Max(v.Y, a.Y), math.Max(v.Z, a.Z)}
}

// Get returns the axis-th component of v: 0=X, 1=Y, 2=Z.
func (v V3) Get(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Lerp returns the linear interpolation between v and a at ratio t.
func (v V3) Lerp(a V3, t float64) V3 {
	return V3{v.X + (a.X-v.X)*t, v.Y + (a.Y-v.Y)*t, v.Z + (a.Z-v.Z)*t}
}
