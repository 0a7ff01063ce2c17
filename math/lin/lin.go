// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides the 3D vector and quaternion algebra used by the
// geometry, shape, gjk, and bvh packages: plain value types with the
// operations a rigid-body pipeline needs and nothing more.
package lin

import "math"

// Epsilon is the default tolerance used by the Aeq/AeqZ almost-equal checks.
const Epsilon = 0.000001

// Aeq (~=) returns true when a and b are equal to within Epsilon.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// AeqZ (~= 0) returns true when a is within Epsilon of zero.
func AeqZ(a float64) bool { return math.Abs(a) < Epsilon }

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
