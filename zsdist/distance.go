package zsdist

import (
	"fmt"

	"github.com/katalvlaran/zsdiff/core"
	"github.com/katalvlaran/zsdiff/editscript"
)

// solver holds all state for one Distance call: the two annotated
// trees, the per-node singleton scripts, the back-pointer table, and
// the reusable forest-distance scratch buffer. Bundling this in a
// struct (rather than free functions closing over local slices) keeps
// the keyroot-pair loop's dependencies explicit and the hot inner loop
// free of repeated parameter threading.
type solver struct {
	a, b *core.AnnotatedTree

	aRemove []*editscript.Script // aRemove[i] = REMOVE(a.Nodes[i])
	bInsert []*editscript.Script // bInsert[j] = INSERT(b.Nodes[j])

	// treedists[x*b.Size+y] is the finalized optimal script for the
	// subtree-pair (x,y), once that pair has been visited as a tree
	// case; nil until then.
	treedists []*editscript.Script

	// fd is the forest-distance scratch table, sized to the largest
	// possible (a.Size+1)x(b.Size+1) forest pair and reused across
	// every keyroot-pair iteration; only the first m*n entries of a
	// given iteration (indexed by that iteration's own n) are live.
	fd []*editscript.Script

	insertCost InsertCostFunc
	removeCost RemoveCostFunc
	updateCost UpdateCostFunc
}

// Distance computes the minimum-cost edit script transforming the tree
// rooted at leftRoot into the tree rooted at rightRoot, under the given
// cost model, and returns it as a flattened, left-to-right sequence of
// primitive edits. See spec §4.3 and §6 for the full contract.
func Distance(
	leftRoot, rightRoot core.Node,
	children core.ChildrenFunc,
	insertCost InsertCostFunc,
	removeCost RemoveCostFunc,
	updateCost UpdateCostFunc,
) ([]editscript.Primitive, error) {
	// 0. Reject degenerate (empty) input before Annotate ever runs: per
	// spec §7 "Degenerate input", an empty tree has no node handle to
	// report as the unset side of a REMOVE/INSERT primitive, so this is
	// an error, surfaced directly as ErrEmptyTree rather than as the
	// core package's own nil-root contract violation.
	if leftRoot == nil || rightRoot == nil {
		return nil, ErrEmptyTree
	}

	// 1. Annotate both trees.
	a, err := core.Annotate(leftRoot, children)
	if err != nil {
		return nil, fmt.Errorf("zsdist: annotating left tree: %w", err)
	}
	b, err := core.Annotate(rightRoot, children)
	if err != nil {
		return nil, fmt.Errorf("zsdist: annotating right tree: %w", err)
	}

	s := &solver{
		a: a, b: b,
		treedists:  make([]*editscript.Script, a.Size*b.Size),
		fd:         make([]*editscript.Script, (a.Size+1)*(b.Size+1)),
		insertCost: insertCost,
		removeCost: removeCost,
		updateCost: updateCost,
	}

	// 2. Precompute per-node singleton scripts.
	if err = s.buildSingletons(); err != nil {
		return nil, err
	}

	// 3. Outer loop over keyroot pairs; inner forest-distance DP.
	for _, i := range a.Keyroots {
		for _, j := range b.Keyroots {
			if err = s.solvePair(i, j); err != nil {
				return nil, err
			}
		}
	}

	// 4. The root/root cell holds the overall optimal script.
	final := s.treedists[(a.Size-1)*b.Size+(b.Size-1)]
	result := editscript.CloneToList(final, true)

	return result.Primitives, nil
}

// buildSingletons computes a_remove and b_insert (spec §4.3 "Setup").
func (s *solver) buildSingletons() error {
	s.aRemove = make([]*editscript.Script, s.a.Size)
	for i, n := range s.a.Nodes {
		cost := s.removeCost(n)
		if cost < 0 {
			return fmt.Errorf("zsdist: remove_cost: %w", ErrNegativeCost)
		}
		s.aRemove[i] = editscript.Remove(n, cost)
	}

	s.bInsert = make([]*editscript.Script, s.b.Size)
	for j, n := range s.b.Nodes {
		cost := s.insertCost(n)
		if cost < 0 {
			return fmt.Errorf("zsdist: insert_cost: %w", ErrNegativeCost)
		}
		s.bInsert[j] = editscript.Insert(n, cost)
	}

	return nil
}

// solvePair runs the forest-distance DP for one keyroot pair (i,j),
// populating s.fd for that pair's index space and, for every subtree
// pair it resolves along the way, s.treedists.
func (s *solver) solvePair(i, j int) error {
	a, b := s.a, s.b

	m := i - a.LMDs[i] + 2
	n := j - b.LMDs[j] + 2
	ioff := a.LMDs[i] - 1
	joff := b.LMDs[j] - 1

	// Clear this pair's live region of fd to the empty-script sentinel.
	for k := 0; k < m*n; k++ {
		s.fd[k] = editscript.EmptyCombine()
	}

	// Border row: removing a prefix of A against an empty B-forest.
	for x := 1; x < m; x++ {
		s.fd[x*n] = editscript.Combine(s.fd[(x-1)*n], s.aRemove[x+ioff])
	}
	// Border column: inserting a prefix of B against an empty A-forest.
	for y := 1; y < n; y++ {
		s.fd[y] = editscript.Combine(s.fd[y-1], s.bInsert[y+joff])
	}

	for x := 1; x < m; x++ {
		for y := 1; y < n; y++ {
			xIoff := x + ioff
			yJoff := y + joff

			var err error
			if a.LMDs[i] == a.LMDs[xIoff] && b.LMDs[j] == b.LMDs[yJoff] {
				err = s.solveTreeCell(n, x, y, xIoff, yJoff)
			} else {
				s.solveForestCell(n, x, y, xIoff, yJoff, ioff, joff)
			}
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// solveTreeCell handles the "tree case": the sub-forests ending at
// xIoff/yJoff are actually single subtrees, so op3 is an update/match
// of their roots. The resulting cell is also snapshotted into
// treedists, since this finalizes the (xIoff,yJoff) subtree-pair
// subproblem (spec §4.3 "Tree case"). n is the current keyroot pair's
// fd row stride, so fd[x,y] lives at s.fd[x*n+y].
func (s *solver) solveTreeCell(n, x, y, xIoff, yJoff int) error {
	delta := s.updateCost(s.a.Nodes[xIoff], s.b.Nodes[yJoff])
	if delta < 0 {
		return fmt.Errorf("zsdist: update_cost: %w", ErrNegativeCost)
	}

	op1 := s.fd[(x-1)*n+y].Cost + s.aRemove[xIoff].Cost
	op2 := s.fd[x*n+y-1].Cost + s.bInsert[yJoff].Cost
	op3 := s.fd[(x-1)*n+y-1].Cost + delta

	switch {
	case op1 < op2 && op1 < op3:
		s.fd[x*n+y] = editscript.Combine(s.fd[(x-1)*n+y], s.aRemove[xIoff])
	case op2 < op3:
		s.fd[x*n+y] = editscript.Combine(s.fd[x*n+y-1], s.bInsert[yJoff])
	default:
		s.fd[x*n+y] = editscript.CombineUpdate(s.fd[(x-1)*n+y-1], s.a.Nodes[xIoff], s.b.Nodes[yJoff], delta)
	}

	s.treedists[xIoff*s.b.Size+yJoff] = editscript.CloneToList(s.fd[x*n+y], false)

	return nil
}

// solveForestCell handles the "forest case": the sub-forests are
// proper forests, so op3 combines the forest-distance cell at (p,q)
// with the previously solved (xIoff,yJoff) subtree-pair subproblem
// looked up in treedists (spec §4.3 "Forest case").
func (s *solver) solveForestCell(n, x, y, xIoff, yJoff, ioff, joff int) {
	p := s.a.LMDs[xIoff] - 1 - ioff
	q := s.b.LMDs[yJoff] - 1 - joff

	sub := s.treedists[xIoff*s.b.Size+yJoff]
	subcost := 0
	if sub != nil {
		subcost = sub.Cost
	}

	op1 := s.fd[(x-1)*n+y].Cost + s.aRemove[xIoff].Cost
	op2 := s.fd[x*n+y-1].Cost + s.bInsert[yJoff].Cost
	op3 := s.fd[p*n+q].Cost + subcost

	switch {
	case op1 < op2 && op1 < op3:
		s.fd[x*n+y] = editscript.Combine(s.fd[(x-1)*n+y], s.aRemove[xIoff])
	case op2 < op3:
		s.fd[x*n+y] = editscript.Combine(s.fd[x*n+y-1], s.bInsert[yJoff])
	default:
		s.fd[x*n+y] = editscript.Combine(s.fd[p*n+q], sub)
	}
}
