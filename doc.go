// Package zsdiff (zsdist) computes the Zhang–Shasha edit distance
// between two ordered, labeled trees and the edit script that
// realizes it.
//
// 🚀 What is zsdiff?
//
//	A modern, zero-dependency library that brings together:
//
//	  • Post-order annotation: index any tree via a single children
//	    callback, no fixed node type required
//	  • An edit-script algebra: build and combine INSERT/REMOVE/
//	    MATCH/UPDATE scripts in O(1) per operation, then flatten them
//	    in time linear in the script's length
//	  • The classic keyroot/forest-distance double DP, with an optional
//	    apply step and an XML front end
//
// ✨ Why choose zsdiff?
//
//   - Beginner-friendly — one entry point, `zsdist.Distance`
//   - Opaque by design  — nodes are identity tokens; the engine never
//     reads through them, so any tree shape fits
//   - Pure Go           — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under five subpackages:
//
//	core/       — Node/ChildrenFunc contract, post-order Annotate
//	editscript/ — the INSERT/REMOVE/COMBINE/MATCH/UPDATE algebra
//	zsdist/     — Distance: the keyroot-pair, forest-distance DP
//	applier/    — replays a flattened script to rebuild a node sequence
//	xmltree/    — encoding/xml adapter plus a default cost model
//
// Quick example:
//
//	    f               f
//	   / \             / \
//	  d   e    ≫      c   e
//	 / \             /
//	a   c           d
//	    |          / \
//	    b         a   b
//
//	two trees, one minimum-cost sequence of inserts, removes, and
//	updates transforming the left into the right.
//
// Dive into the zsdist package docs for the full cost-model contract.
//
//	go get github.com/katalvlaran/zsdiff
package zsdiff
