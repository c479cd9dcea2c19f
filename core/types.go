package core

import "errors"

// Sentinel errors for core tree operations.
var (
	// ErrNilRoot indicates a nil root handle was passed to Annotate.
	ErrNilRoot = errors.New("core: root node is nil")

	// ErrNilChildrenFunc indicates no children callback was supplied.
	ErrNilChildrenFunc = errors.New("core: children callback is nil")
)

// Node is an opaque handle to a tree node. The engine treats it as an
// identity token only: it never reads through it, it only threads it
// through callbacks and the returned edit script.
type Node any

// ChildrenFunc returns the ordered, finite sequence of n's children.
// A nil return is treated as "no children", never as an error.
// ChildrenFunc may be called more than once for the same Node; callers
// should either memoize or make repeated calls cheap.
type ChildrenFunc func(n Node) []Node

// AnnotatedTree is the post-order-indexed representation an Annotate
// call produces for one input tree.
//
// Nodes[0..Size) holds node handles in left-to-right post-order; index
// i is that node's post-order id. LMDs[i] is the post-order index of
// node i's leftmost leaf descendant. Keyroots is the strictly ascending
// list of post-order indices with one entry per distinct LMDs value,
// always including Size-1 (the root).
type AnnotatedTree struct {
	Size     int
	Nodes    []Node
	LMDs     []int
	Keyroots []int
}
