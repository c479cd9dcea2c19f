package zsdist_test

import (
	"testing"

	"github.com/katalvlaran/zsdiff/zsdist"
)

// buildBalancedTree constructs a balanced labeledNode tree with
// roughly n total nodes, branching factor width, for benchmarking.
func buildBalancedTree(n, width int) *labeledNode {
	root := &labeledNode{label: "n0"}
	frontier := []*labeledNode{root}
	id := 1
	for id < n && len(frontier) > 0 {
		var next []*labeledNode
		for _, p := range frontier {
			for k := 0; k < width && id < n; k++ {
				child := &labeledNode{label: "n" + itoa(id)}
				p.kids = append(p.kids, child)
				next = append(next, child)
				id++
			}
		}
		frontier = next
	}

	return root
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}

	return string(buf[i:])
}

// benchmarkDistance is a helper that runs Distance on two balanced
// trees of roughly n nodes each. It resets the timer before entering
// the loop and fails on unexpected errors.
func benchmarkDistance(b *testing.B, n, width int) {
	left := buildBalancedTree(n, width)
	right := buildBalancedTree(n, width)

	b.ResetTimer() // ignore tree construction time
	for i := 0; i < b.N; i++ {
		_, err := zsdist.Distance(left, right, childrenOf, unitInsert, unitRemove, labelUpdate)
		if err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}

// BenchmarkDistance_Small100 benchmarks Distance on two 100-node
// binary-branching trees.
func BenchmarkDistance_Small100(b *testing.B) {
	benchmarkDistance(b, 100, 2)
}

// BenchmarkDistance_Medium500 benchmarks Distance on two 500-node
// binary-branching trees.
func BenchmarkDistance_Medium500(b *testing.B) {
	benchmarkDistance(b, 500, 2)
}

// BenchmarkDistance_WideShallow benchmarks Distance on two 500-node
// trees with a wide branching factor, which makes most non-root
// subtrees keyroots and stresses the forest-distance border rows more
// than the deep case does.
func BenchmarkDistance_WideShallow(b *testing.B) {
	benchmarkDistance(b, 500, 20)
}

// BenchmarkDistance_DeepNarrow benchmarks Distance on two 500-node
// chains (branching factor 1): every node shares the single leaf as its
// leftmost descendant, so each tree has only one keyroot (its root).
func BenchmarkDistance_DeepNarrow(b *testing.B) {
	benchmarkDistance(b, 500, 1)
}
