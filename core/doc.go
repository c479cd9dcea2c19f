// Package core defines the node model shared by every zsdiff package:
// an opaque node handle, the children-enumeration callback that exposes
// tree structure to the rest of the module, and the Annotator that turns
// a tree into the post-order-indexed form the distance solver needs.
//
// core never inspects a Node's structure itself — it only ever calls
// back into the caller-supplied ChildrenFunc. Equality of two Node
// values is whatever Go's interface equality gives the caller; the
// package does not impose a comparison of its own.
package core
