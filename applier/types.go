package applier

import (
	"errors"

	"github.com/katalvlaran/zsdiff/core"
)

// Sentinel errors for Apply's input contract.
var (
	// ErrNilBuilder indicates Apply was called without a Builder, so
	// there is nowhere to materialize INSERT/UPDATE targets.
	ErrNilBuilder = errors.New("applier: builder is nil")

	// ErrUnknownPrimitiveKind indicates a Primitive carried a Kind
	// value Apply does not recognize; this should only happen if a
	// script was built by hand with an invalid Kind, since every
	// zsdist.Distance output uses only the four public kinds.
	ErrUnknownPrimitiveKind = errors.New("applier: primitive has an unrecognized kind")
)

// Builder constructs a fresh core.Node for one INSERT or UPDATE
// target, given the label (whatever representation the caller's cost
// model used as the script's right-hand Node) that describes it.
type Builder interface {
	NewNode(label any) core.Node
}
