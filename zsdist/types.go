package zsdist

import (
	"errors"

	"github.com/katalvlaran/zsdiff/core"
)

// Sentinel errors for Distance's input and callback contracts.
var (
	// ErrEmptyTree indicates a nil left or right root was passed to
	// Distance. A nil root has no node handle to report back as the
	// unset side of a REMOVE/INSERT primitive, so this is defined as an
	// error rather than as an all-insert/all-remove script — see
	// DESIGN.md §"Open Question decisions" item 4. Distance checks this
	// itself, before calling core.Annotate, so this sentinel — not
	// core.ErrNilRoot — is what callers actually observe.
	ErrEmptyTree = errors.New("zsdist: input trees must be non-empty")

	// ErrNegativeCost indicates a cost callback returned a negative
	// value, which spec §7 documents as undefined behavior; this
	// implementation chooses to surface it as an error rather than
	// assert or silently clamp to zero.
	ErrNegativeCost = errors.New("zsdist: cost callback returned a negative value")
)

// InsertCostFunc returns the non-negative cost of inserting w.
type InsertCostFunc func(w core.Node) int

// RemoveCostFunc returns the non-negative cost of removing v.
type RemoveCostFunc func(v core.Node) int

// UpdateCostFunc returns the non-negative cost of updating v into w;
// zero denotes a match.
type UpdateCostFunc func(v, w core.Node) int
