// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// Q is a unit quaternion used to track/manipulate 3D object rotations.
type Q struct {
	X, Y, Z, W float64
}

// QI is the identity rotation.
var QI = Q{0, 0, 0, 1}

// Eq (==) returns true when q and r have identical components.
func (q Q) Eq(r Q) bool { return q.X == r.X && q.Y == r.Y && q.Z == r.Z && q.W == r.W }

// Inv returns the inverse (conjugate, since q is unit-length) of q.
func (q Q) Inv() Q { return Q{-q.X, -q.Y, -q.Z, q.W} }

// Mult (*) returns the product q*r: the rotation q applied after r.
func (q Q) Mult(r Q) Q {
	return Q{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Len returns the length of q.
func (q Q) Len() float64 { return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W) }

// Unit returns q normalized to unit length. The zero quaternion is
// returned unchanged.
func (q Q) Unit() Q {
	l := q.Len()
	if l == 0 {
		return q
	}
	s := 1 / l
	return Q{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Rotate applies the rotation q to vector v.
//
// Uses the standard quaternion sandwich product q*v*q⁻¹ expanded into
// vector operations (Rodrigues' formula) rather than promoting v to a
// pure quaternion and back, matching the faster form used throughout
// rotation-heavy code.
func (q Q) Rotate(v V3) V3 {
	qv := V3{q.X, q.Y, q.Z}
	uv := qv.Cross(v)
	uuv := qv.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// SetAa returns the rotation about the given axis (need not be unit) by
// angle in radians.
func SetAa(ax, ay, az, angle float64) Q {
	axis := V3{ax, ay, az}
	alenSqr := axis.LenSqr()
	if alenSqr == 0 {
		return QI
	}
	s := math.Sin(angle*0.5) / math.Sqrt(alenSqr)
	return Q{ax * s, ay * s, az * s, math.Cos(angle * 0.5)}
}
