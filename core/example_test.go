package core_test

import (
	"fmt"

	"github.com/katalvlaran/zsdiff/core"
)

// node is a minimal tree node usable directly with core.Annotate.
type node struct {
	label    string
	children []*node
}

// ExampleAnnotate builds a tiny three-node tree and prints its
// post-order labels alongside the computed lmd and keyroot indices.
func ExampleAnnotate() {
	root := &node{label: "r", children: []*node{
		{label: "x"},
		{label: "y"},
	}}

	at, err := core.Annotate(root, func(n core.Node) []core.Node {
		kids := n.(*node).children
		out := make([]core.Node, len(kids))
		for i, k := range kids {
			out[i] = k
		}

		return out
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for i, n := range at.Nodes {
		fmt.Printf("%d: %s lmd=%d\n", i, n.(*node).label, at.LMDs[i])
	}
	fmt.Println("keyroots:", at.Keyroots)

	// Output:
	// 0: x lmd=0
	// 1: y lmd=1
	// 2: r lmd=0
	// keyroots: [1 2]
}
