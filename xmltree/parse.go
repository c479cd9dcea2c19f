package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/katalvlaran/zsdiff/core"
)

// Parse decodes a single XML document from r into its root Node.
func Parse(r io.Reader) (*Node, error) {
	var root Node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("xmltree: decoding document: %w", err)
	}

	return &root, nil
}

// Children is the core.ChildrenFunc for an xmltree.Node.
func Children(n core.Node) []core.Node {
	node := n.(*Node)
	out := make([]core.Node, len(node.Children))
	for i, c := range node.Children {
		out[i] = c
	}

	return out
}
