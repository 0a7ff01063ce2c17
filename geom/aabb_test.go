package geom

import (
	"testing"

	"github.com/gazed/collide/math/lin"
)

func TestNewAABBPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for min > max")
		}
	}()
	NewAABB(lin.V3{X: 1}, lin.V3{X: 0})
}

func TestIntersectsSymmetric(t *testing.T) {
	a := NewAABB(lin.V3{X: 0, Y: 0, Z: 0}, lin.V3{X: 1, Y: 1, Z: 1})
	b := NewAABB(lin.V3{X: 0.5, Y: 0.5, Z: 0.5}, lin.V3{X: 2, Y: 2, Z: 2})
	if !a.Intersects(b) || !b.Intersects(a) {
		t.Errorf("expected overlap to be symmetric and true")
	}
	c := NewAABB(lin.V3{X: 5, Y: 5, Z: 5}, lin.V3{X: 6, Y: 6, Z: 6})
	if a.Intersects(c) || c.Intersects(a) {
		t.Errorf("expected disjoint boxes not to intersect")
	}
}

func TestUnionContainsBoth(t *testing.T) {
	a := NewAABB(lin.V3{X: 0, Y: 0, Z: 0}, lin.V3{X: 1, Y: 1, Z: 1})
	b := NewAABB(lin.V3{X: -1, Y: 2, Z: 0.5}, lin.V3{X: 0.5, Y: 3, Z: 4})
	u := a.Union(b)
	for _, box := range []AABB{a, b} {
		if u.Min.X > box.Min.X || u.Min.Y > box.Min.Y || u.Min.Z > box.Min.Z {
			t.Errorf("union min does not contain %v", box)
		}
		if u.Max.X < box.Max.X || u.Max.Y < box.Max.Y || u.Max.Z < box.Max.Z {
			t.Errorf("union max does not contain %v", box)
		}
	}
}

func TestCenter(t *testing.T) {
	a := NewAABB(lin.V3{X: 0, Y: 0, Z: 0}, lin.V3{X: 2, Y: 4, Z: 6})
	if want := (lin.V3{X: 1, Y: 2, Z: 3}); !a.Center.Eq(want) {
		t.Errorf("center: got %v want %v", a.Center, want)
	}
}
