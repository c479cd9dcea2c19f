package applier

import (
	"fmt"

	"github.com/katalvlaran/zsdiff/core"
	"github.com/katalvlaran/zsdiff/editscript"
)

// Apply replays script in order, producing the resulting node
// sequence: REMOVE contributes nothing, MATCH carries its source node
// through unchanged, and INSERT/UPDATE each ask builder for a fresh
// node from the target label.
//
// The returned slice is the target tree's post-order node list when
// script is the output of zsdist.Distance(a, b, ...): applying it to a
// reproduces b's shape one primitive at a time.
func Apply(script []editscript.Primitive, builder Builder) ([]core.Node, error) {
	if builder == nil {
		return nil, ErrNilBuilder
	}

	out := make([]core.Node, 0, len(script))
	for i, p := range script {
		switch p.Kind {
		case editscript.PrimRemove:
			// Dropped; nothing carries forward to the result.
		case editscript.PrimMatch:
			out = append(out, p.Left)
		case editscript.PrimInsert, editscript.PrimUpdate:
			out = append(out, builder.NewNode(p.Right))
		default:
			return nil, fmt.Errorf("applier: primitive %d: %w", i, ErrUnknownPrimitiveKind)
		}
	}

	return out, nil
}
