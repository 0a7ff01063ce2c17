package geom

import (
	"fmt"

	"github.com/gazed/collide/math/lin"
)

// AABB is an axis-aligned bounding box: {min, max, center} where
// center = 0.5*(min+max) and min <= max on every axis.
type AABB struct {
	Min, Max, Center lin.V3
}

// NewAABB builds an AABB from min and max corners. Panics if min is not
// componentwise <= max: this is a caller bug, not a runtime condition.
func NewAABB(min, max lin.V3) AABB {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		panic(fmt.Sprintf("geom: invalid AABB, min %v > max %v", min, max))
	}
	return AABB{
		Min:    min,
		Max:    max,
		Center: min.Add(max).Scale(0.5),
	}
}

// Intersects is the six-comparison separating-axis test on the three
// principal axes; strict inequality on any axis means disjoint.
func (a AABB) Intersects(b AABB) bool {
	if a.Max.X < b.Min.X || b.Max.X < a.Min.X {
		return false
	}
	if a.Max.Y < b.Min.Y || b.Max.Y < a.Min.Y {
		return false
	}
	if a.Max.Z < b.Min.Z || b.Max.Z < a.Min.Z {
		return false
	}
	return true
}

// Union returns the smallest AABB containing both a and b: componentwise
// inf of the mins, sup of the maxes.
func (a AABB) Union(b AABB) AABB {
	return NewAABB(a.Min.Inf(b.Min), a.Max.Sup(b.Max))
}
