package editscript

import (
	"github.com/katalvlaran/zsdiff/core"
)

// Kind tags the variant a Script value holds.
type Kind int

const (
	// KindInsert is a leaf INSERT(w) op; cost = insert_cost(w).
	KindInsert Kind = iota
	// KindRemove is a leaf REMOVE(v) op; cost = remove_cost(v).
	KindRemove
	// KindCombine concatenates Left then Right; either may be nil.
	KindCombine
	// KindCombineUpdate appends UPDATE(V,W) after flattening Prefix;
	// Cost = Prefix.Cost + the update delta, which is > 0.
	KindCombineUpdate
	// KindCombineMatch is KindCombineUpdate with a zero delta.
	KindCombineMatch
	// KindList is a materialized, already-flattened script: a
	// contiguous Primitives slice plus its total Cost.
	KindList
)

// Script is a node in the edit-script algebra. Exactly one of the
// field groups below is meaningful, selected by Kind:
//
//	KindInsert / KindRemove:        V or W, Cost
//	KindCombine:                    Left, Right (either may be nil)
//	KindCombineUpdate/Match:        Prefix (may be nil), V, W, Cost
//	KindList:                       Primitives, Cost
//
// Script values are built bottom-up and never mutated after
// construction; a KindList value produced by CloneToList may be shared
// by pointer across many back-pointers (see the solver's treedists
// table), which is safe precisely because it is immutable.
type Script struct {
	Kind Kind
	Cost int

	Left, Right *Script // KindCombine operands
	Prefix      *Script // KindCombineUpdate / KindCombineMatch operand

	V, W core.Node // KindInsert/Remove use one of these; Combine* use both

	Primitives []Primitive // KindList only
}

// PrimitiveKind tags one flattened, leaf-level edit operation.
type PrimitiveKind int

const (
	// PrimInsert is INSERT(w): Left is nil, Right is the inserted node.
	PrimInsert PrimitiveKind = iota
	// PrimRemove is REMOVE(v): Right is nil, Left is the removed node.
	PrimRemove
	// PrimMatch is MATCH(v,w), cost 0: both Left and Right are set.
	PrimMatch
	// PrimUpdate is UPDATE(v,w), cost > 0: both Left and Right are set.
	PrimUpdate

	// primNestedList is an internal, unexported kind: it opaquely wraps
	// a nested KindList Script inside another KindList's Primitives,
	// produced when CloneToList(..., flattenLists=false) snapshots a
	// script that itself references an earlier snapshot. Flatten and
	// Count unroll it when asked to flatten lists recursively, and
	// otherwise treat it as a single unit — exactly like any other
	// Primitive.
	primNestedList
)

// Primitive is one entry of a flattened edit script. Nested is only
// set when Kind is the package-internal nested-list wrapper; callers
// outside this package only ever see PrimInsert/PrimRemove/PrimMatch/
// PrimUpdate entries, since the solver always produces its final
// output via CloneToList(..., flattenLists=true).
type Primitive struct {
	Kind        PrimitiveKind
	Left, Right core.Node
	Nested      *Script
}

// EmptyCombine returns the zero-cost empty-script sentinel used to
// seed the solver's forest-distance scratch table: a COMBINE with no
// operands. Go gives no free "all-zero-bytes is valid" shortcut the
// way the original C source relied on (a zero-valued *Script would be
// a nil pointer, not a usable sentinel), so every cell of the scratch
// table is explicitly set to one of these before use.
func EmptyCombine() *Script {
	return &Script{Kind: KindCombine}
}

// Insert builds a leaf INSERT(w) script with the given cost.
func Insert(w core.Node, cost int) *Script {
	return &Script{Kind: KindInsert, Cost: cost, W: w}
}

// Remove builds a leaf REMOVE(v) script with the given cost.
func Remove(v core.Node, cost int) *Script {
	return &Script{Kind: KindRemove, Cost: cost, V: v}
}

// Combine concatenates left then right; either may be nil, denoting
// the absent/empty prefix.
func Combine(left, right *Script) *Script {
	s := &Script{Kind: KindCombine, Left: left, Right: right}
	if left != nil {
		s.Cost += left.Cost
	}
	if right != nil {
		s.Cost += right.Cost
	}

	return s
}

// CombineUpdate appends an UPDATE(v,w) (delta > 0) or MATCH(v,w)
// (delta == 0) after prefix, which may be nil.
func CombineUpdate(prefix *Script, v, w core.Node, delta int) *Script {
	kind := KindCombineUpdate
	if delta == 0 {
		kind = KindCombineMatch
	}
	s := &Script{Kind: kind, Cost: delta, Prefix: prefix, V: v, W: w}
	if prefix != nil {
		s.Cost += prefix.Cost
	}

	return s
}
