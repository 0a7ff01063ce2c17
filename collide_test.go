package collide

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gazed/collide/geom"
	"github.com/gazed/collide/gjk"
	"github.com/gazed/collide/math/lin"
	"github.com/gazed/collide/narrow"
	"github.com/gazed/collide/shape"
)

func unitCube() shape.Cuboid { return shape.Cuboid{HalfExtents: lin.V3{X: 0.5, Y: 0.5, Z: 0.5}} }

func contactKey(c narrow.Contact) [2]int { return [2]int{c.I, c.J} }

func keySet(contacts []narrow.Contact) map[[2]int]bool {
	out := make(map[[2]int]bool, len(contacts))
	for _, c := range contacts {
		out[contactKey(c)] = true
	}
	return out
}

// S1: two unit cubes touching.
func TestScenarioTouchingCubes(t *testing.T) {
	cube := unitCube()
	shapes := []shape.Shape{cube, cube}
	poses := []geom.Pose{
		geom.NewPose(lin.V3{}, lin.QI),
		geom.NewPose(lin.V3{X: 0.5}, lin.QI),
	}
	got := SerialCollide(shapes, poses, 1)
	if len(got) != 1 || got[0].I != 0 || got[0].J != 1 || got[0].Depth != 0 {
		t.Fatalf("expected one contact (0,1) depth 0, got %v", got)
	}
}

// S2: two unit cubes well separated.
func TestScenarioSeparatedCubes(t *testing.T) {
	cube := unitCube()
	shapes := []shape.Shape{cube, cube}
	poses := []geom.Pose{
		geom.NewPose(lin.V3{}, lin.QI),
		geom.NewPose(lin.V3{X: 3}, lin.QI),
	}
	got := SerialCollide(shapes, poses, 1)
	if len(got) != 0 {
		t.Fatalf("expected no contacts, got %v", got)
	}
}

// S3: 100 shapes with non-overlapping AABBs.
func TestScenarioNonOverlappingPopulation(t *testing.T) {
	cube := unitCube()
	n := 100
	shapes := make([]shape.Shape, n)
	poses := make([]geom.Pose, n)
	for i := 0; i < n; i++ {
		shapes[i] = cube
		poses[i] = geom.NewPose(lin.V3{X: float64(i) * 5}, lin.QI)
	}
	got := SerialCollide(shapes, poses, 4)
	if len(got) != 0 {
		t.Fatalf("expected no contacts among non-overlapping boxes, got %v", got)
	}
}

// S4: 100 unit cubes stacked along X, 99 consecutive contacts.
func TestScenarioStackedCubes(t *testing.T) {
	cube := unitCube()
	n := 100
	shapes := make([]shape.Shape, n)
	poses := make([]geom.Pose, n)
	for i := 0; i < n; i++ {
		shapes[i] = cube
		poses[i] = geom.NewPose(lin.V3{X: float64(i) * 0.9}, lin.QI)
	}
	got := SerialCollide(shapes, poses, 4)
	if len(got) != n-1 {
		t.Fatalf("expected %d contacts, got %d: %v", n-1, len(got), got)
	}

	gotPairs := make([][2]int, 0, len(got))
	for _, c := range got {
		gotPairs = append(gotPairs, [2]int{c.I, c.J})
	}
	wantPairs := make([][2]int, 0, n-1)
	for i := 0; i < n-1; i++ {
		wantPairs = append(wantPairs, [2]int{i, i + 1})
	}
	sortPairs := cmpopts.SortSlices(func(a, b [2]int) bool {
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		return a[1] < b[1]
	})
	if diff := cmp.Diff(wantPairs, gotPairs, sortPairs); diff != "" {
		t.Errorf("stacked-cube contact pairs mismatch (-want +got):\n%s", diff)
	}
}

// S6: all poses identical, n(n-1)/2 contacts.
func TestScenarioAllCoincident(t *testing.T) {
	cube := unitCube()
	n := 12
	shapes := make([]shape.Shape, n)
	poses := make([]geom.Pose, n)
	for i := 0; i < n; i++ {
		shapes[i] = cube
		poses[i] = geom.NewPose(lin.V3{}, lin.QI)
	}
	got := SerialCollide(shapes, poses, 2)
	want := n * (n - 1) / 2
	if len(got) != want {
		t.Fatalf("expected %d contacts, got %d", want, len(got))
	}
}

// S5: random convex hulls from two disjoint boxes, checked against an
// all-pairs GJK oracle.
func TestScenarioReferenceEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 200
	shapes := make([]shape.Shape, n)
	poses := make([]geom.Pose, n)
	for i := 0; i < n; i++ {
		lo, hi := -1.0, 0.0
		if i%2 == 1 {
			lo, hi = 0.0, 1.0
		}
		loc := lin.V3{
			X: lo + rng.Float64()*(hi-lo),
			Y: lo + rng.Float64()*(hi-lo),
			Z: lo + rng.Float64()*(hi-lo),
		}
		rot := lin.SetAa(rng.Float64(), rng.Float64(), rng.Float64()+0.1, rng.Float64()*6.28)
		poses[i] = geom.NewPose(loc, rot)
		if i%2 == 0 {
			shapes[i] = shape.RegularTetrahedron(0.3 + rng.Float64()*0.2)
		} else {
			shapes[i] = shape.BoxHull(lin.V3{X: 0.2, Y: 0.2, Z: 0.2})
		}
	}

	got := keySet(SerialCollide(shapes, poses, 8))
	want := map[[2]int]bool{}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_, dist := gjk.Contact(shapes[i], poses[i], shapes[j], poses[j])
			if dist == 0 {
				want[[2]int{i, j}] = true
			}
		}
	}
	if len(got) != len(want) {
		t.Fatalf("pipeline found %d contacts, oracle found %d", len(got), len(want))
	}
	for k := range want {
		if !got[k] {
			t.Errorf("pipeline missed oracle contact %v", k)
		}
	}
}

// Pipeline equivalence: serial and parallel agree as multisets of (i,j).
func TestSerialParallelEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := 300
	cube := unitCube()
	shapes := make([]shape.Shape, n)
	poses := make([]geom.Pose, n)
	for i := 0; i < n; i++ {
		shapes[i] = cube
		poses[i] = geom.NewPose(lin.V3{
			X: rng.Float64() * 10,
			Y: rng.Float64() * 10,
			Z: rng.Float64() * 10,
		}, lin.QI)
	}
	serial := keySet(SerialCollide(shapes, poses, 6))
	parallel := keySet(ParallelCollide(shapes, poses, 6))
	if len(serial) != len(parallel) {
		t.Fatalf("serial found %d contacts, parallel found %d", len(serial), len(parallel))
	}
	for k := range serial {
		if !parallel[k] {
			t.Errorf("parallel missing contact %v found by serial", k)
		}
	}
}

// Boundary behaviors: n=0, n=1.
func TestBoundaryEmptyAndSinglePopulation(t *testing.T) {
	if got := SerialCollide(nil, nil, 4); len(got) != 0 {
		t.Errorf("n=0: expected no contacts, got %v", got)
	}
	shapes := []shape.Shape{unitCube()}
	poses := []geom.Pose{geom.Identity}
	if got := SerialCollide(shapes, poses, 4); len(got) != 0 {
		t.Errorf("n=1: expected no contacts, got %v", got)
	}
}

func TestLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on shapes/poses length mismatch")
		}
	}()
	SerialCollide([]shape.Shape{unitCube()}, nil, 4)
}
