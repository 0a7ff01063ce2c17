package bvh

import "sync"

// Pair is a candidate overlapping pair of shape indices, always with
// I < J.
type Pair struct {
	I, J int
}

// BroadMaxDepth is the recursion depth below which BroadPhaseParallel
// stops forking and continues serially.
const BroadMaxDepth = 4

// emitLeafPairs reports every (i,j) with i from a, j from b, normalized
// to I<J. a and b must reference disjoint index sets — callers use this
// only for cross-subtree comparisons, never a leaf against itself.
func emitLeafPairs(a, b *Leaf) []Pair {
	var pairs []Pair
	for _, i := range a.Indices {
		for _, j := range b.Indices {
			if i < j {
				pairs = append(pairs, Pair{i, j})
			} else {
				pairs = append(pairs, Pair{j, i})
			}
		}
	}
	return pairs
}

// emitSelfLeafPairs reports every unordered pair within a single leaf's
// own indices, each exactly once.
func emitSelfLeafPairs(l *Leaf) []Pair {
	var pairs []Pair
	idx := l.Indices
	for x := 0; x < len(idx); x++ {
		for y := x + 1; y < len(idx); y++ {
			i, j := idx[x], idx[y]
			if i < j {
				pairs = append(pairs, Pair{i, j})
			} else {
				pairs = append(pairs, Pair{j, i})
			}
		}
	}
	return pairs
}

// BroadPhase descends a and b simultaneously and returns every pair
// (i,j), i<j, whose AABBs overlap. Passing the same tree as both a and
// b runs a self-collision query: each internal-vs-internal step visits
// a node's own left/right split only once, so no pair is ever reported
// twice.
func BroadPhase(a, b Node) []Pair {
	if !a.AABB().Intersects(b.AABB()) {
		return nil
	}
	if a == b {
		return selfPairs(a)
	}
	aLeaf, aIsLeaf := a.(*Leaf)
	bLeaf, bIsLeaf := b.(*Leaf)
	switch {
	case aIsLeaf && bIsLeaf:
		return emitLeafPairs(aLeaf, bLeaf)
	case aIsLeaf:
		bi := b.(*Internal)
		return append(BroadPhase(a, bi.Left), BroadPhase(a, bi.Right)...)
	case bIsLeaf:
		ai := a.(*Internal)
		return append(BroadPhase(ai.Left, b), BroadPhase(ai.Right, b)...)
	default:
		ai, bi := a.(*Internal), b.(*Internal)
		out := BroadPhase(ai.Left, bi.Left)
		out = append(out, BroadPhase(ai.Left, bi.Right)...)
		out = append(out, BroadPhase(ai.Right, bi.Left)...)
		out = append(out, BroadPhase(ai.Right, bi.Right)...)
		return out
	}
}

// selfPairs handles the a==b case: recurse into both children's own
// self-collision, plus a single left-vs-right cross comparison.
func selfPairs(n Node) []Pair {
	leaf, isLeaf := n.(*Leaf)
	if isLeaf {
		return emitSelfLeafPairs(leaf)
	}
	in := n.(*Internal)
	out := selfPairs(in.Left)
	out = append(out, selfPairs(in.Right)...)
	out = append(out, BroadPhase(in.Left, in.Right)...)
	return out
}

// BroadPhaseParallel is BroadPhase's fork-join variant: self-collision
// recurses into left, right, and the left-vs-right cross term
// concurrently while depth < BroadMaxDepth; deeper recursion and plain
// two-tree queries run on the current goroutine's ordinary descent,
// forking only the cross-tree internal-vs-internal case.
func BroadPhaseParallel(a, b Node) []Pair {
	return broadParallel(a, b, 0)
}

func broadParallel(a, b Node, depth int) []Pair {
	if !a.AABB().Intersects(b.AABB()) {
		return nil
	}
	if a == b {
		return selfParallel(a, depth)
	}
	aLeaf, aIsLeaf := a.(*Leaf)
	bLeaf, bIsLeaf := b.(*Leaf)
	switch {
	case aIsLeaf && bIsLeaf:
		return emitLeafPairs(aLeaf, bLeaf)
	case aIsLeaf:
		bi := b.(*Internal)
		return append(broadParallel(a, bi.Left, depth+1), broadParallel(a, bi.Right, depth+1)...)
	case bIsLeaf:
		ai := a.(*Internal)
		return append(broadParallel(ai.Left, b, depth+1), broadParallel(ai.Right, b, depth+1)...)
	default:
		ai, bi := a.(*Internal), b.(*Internal)
		if depth < BroadMaxDepth {
			var first, second []Pair
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				first = append(broadParallel(ai.Left, bi.Left, depth+1), broadParallel(ai.Left, bi.Right, depth+1)...)
			}()
			go func() {
				defer wg.Done()
				second = append(broadParallel(ai.Right, bi.Left, depth+1), broadParallel(ai.Right, bi.Right, depth+1)...)
			}()
			wg.Wait()
			return append(first, second...)
		}
		out := broadParallel(ai.Left, bi.Left, depth+1)
		out = append(out, broadParallel(ai.Left, bi.Right, depth+1)...)
		out = append(out, broadParallel(ai.Right, bi.Left, depth+1)...)
		out = append(out, broadParallel(ai.Right, bi.Right, depth+1)...)
		return out
	}
}

func selfParallel(n Node, depth int) []Pair {
	leaf, isLeaf := n.(*Leaf)
	if isLeaf {
		return emitSelfLeafPairs(leaf)
	}
	in := n.(*Internal)
	if depth < BroadMaxDepth {
		var left, right, cross []Pair
		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			left = selfParallel(in.Left, depth+1)
		}()
		go func() {
			defer wg.Done()
			right = selfParallel(in.Right, depth+1)
		}()
		go func() {
			defer wg.Done()
			cross = broadParallel(in.Left, in.Right, depth+1)
		}()
		wg.Wait()
		return append(append(left, right...), cross...)
	}
	out := selfParallel(in.Left, depth+1)
	out = append(out, selfParallel(in.Right, depth+1)...)
	out = append(out, broadParallel(in.Left, in.Right, depth+1)...)
	return out
}
