// Package applier replays a flattened edit script, produced by
// zsdist.Distance, to reconstruct the target tree's post-order node
// sequence from the source tree plus a minimal node-construction
// contract.
//
// Apply never mutates the source tree in place: REMOVE drops a
// position, MATCH keeps the source node, and INSERT/UPDATE hand the
// target's opaque label to a caller-supplied builder so the result
// sequence never aliases nodes the source tree owns at a changed
// position.
package applier
