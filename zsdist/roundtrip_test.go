package zsdist_test

import (
	"testing"

	"github.com/katalvlaran/zsdiff/applier"
	"github.com/katalvlaran/zsdiff/core"
	"github.com/katalvlaran/zsdiff/zsdist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityBuilder hands back an INSERT/UPDATE primitive's own target
// node as the newly-built one: childrenOf's fixtures already carry the
// right tree's real *labeledNode handles as the Right side of every
// primitive, so there is nothing to construct from a bare label.
type identityBuilder struct{}

func (identityBuilder) NewNode(label any) core.Node { return label.(core.Node) }

// labelsOf reduces a node sequence to its labels, since MATCH carries
// the left tree's own node through unchanged (applier/apply.go) rather
// than substituting the right tree's node at that position — the two
// are distinct *labeledNode values with equal labels whenever
// labelUpdate scored them a zero-cost match.
func labelsOf(ns []core.Node) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.(*labeledNode).label
	}

	return out
}

// assertAppliesTo covers spec §8's "applying the edit script to A (via
// an external applier) yields B" check: it runs Distance(left, right,
// ...), replays the result through applier.Apply, and asserts the
// replayed sequence matches right's own post-order label sequence.
func assertAppliesTo(t *testing.T, left, right *labeledNode) {
	t.Helper()

	script, err := zsdist.Distance(left, right, childrenOf, unitInsert, unitRemove, labelUpdate)
	require.NoError(t, err)

	got, err := applier.Apply(script, identityBuilder{})
	require.NoError(t, err)

	want, err := core.Annotate(right, childrenOf)
	require.NoError(t, err)

	assert.Equal(t, labelsOf(want.Nodes), labelsOf(got))
}

// TestApply_IdenticalSingleNode covers spec §8 scenario 1 end to end.
func TestApply_IdenticalSingleNode(t *testing.T) {
	assertAppliesTo(t, &labeledNode{label: "x"}, &labeledNode{label: "x"})
}

// TestApply_SingleNodeSubstitution covers spec §8 scenario 2 end to end.
func TestApply_SingleNodeSubstitution(t *testing.T) {
	assertAppliesTo(t, &labeledNode{label: "x"}, &labeledNode{label: "y"})
}

// TestApply_PureInsertion covers spec §8 scenario 3 end to end.
func TestApply_PureInsertion(t *testing.T) {
	left := &labeledNode{label: "a"}
	right := &labeledNode{label: "a", kids: []*labeledNode{{label: "b"}}}

	assertAppliesTo(t, left, right)
}

// TestApply_PureRemoval covers spec §8 scenario 4 end to end.
func TestApply_PureRemoval(t *testing.T) {
	left := &labeledNode{label: "a", kids: []*labeledNode{{label: "b"}}}
	right := &labeledNode{label: "a"}

	assertAppliesTo(t, left, right)
}

// TestApply_ClassicZhangShasha covers spec §8 scenario 5 end to end:
// A = f(d(a,c(b)), e), B = f(c(d(a,b)), e).
func TestApply_ClassicZhangShasha(t *testing.T) {
	a := &labeledNode{label: "a"}
	b := &labeledNode{label: "b"}
	cLeft := &labeledNode{label: "c", kids: []*labeledNode{b}}
	d := &labeledNode{label: "d", kids: []*labeledNode{a, cLeft}}
	e := &labeledNode{label: "e"}
	left := &labeledNode{label: "f", kids: []*labeledNode{d, e}}

	a2 := &labeledNode{label: "a"}
	b2 := &labeledNode{label: "b"}
	d2 := &labeledNode{label: "d", kids: []*labeledNode{a2, b2}}
	cRight := &labeledNode{label: "c", kids: []*labeledNode{d2}}
	e2 := &labeledNode{label: "e"}
	right := &labeledNode{label: "f", kids: []*labeledNode{cRight, e2}}

	assertAppliesTo(t, left, right)
}

// TestApply_SiblingReorderNotFree covers spec §8 scenario 6 end to end:
// r(a,b) vs r(b,a) still reconstructs the reordered sequence, via two
// UPDATEs rather than a free reorder.
func TestApply_SiblingReorderNotFree(t *testing.T) {
	r1 := &labeledNode{label: "r", kids: []*labeledNode{{label: "a"}, {label: "b"}}}
	r2 := &labeledNode{label: "r", kids: []*labeledNode{{label: "b"}, {label: "a"}}}

	assertAppliesTo(t, r1, r2)
}
