// Package zsdist computes the Zhang–Shasha tree edit distance between
// two ordered, labeled trees and returns the optimal edit script that
// transforms one into the other.
//
// Distance runs the classic double dynamic program: an outer loop over
// keyroot pairs, an inner forest-distance table over sub-forests, with
// back-pointers through the editscript algebra so each cell's optimal
// prefix script is reconstructed in time proportional to its own
// length rather than to the size of the whole table.
//
// Time:   O(|A|·|B|·min(depth(A),leaves(A))·min(depth(B),leaves(B)))
// Memory: O(|A|·|B|) for the back-pointer table, O((max forest)²) for
// the reusable forest-distance scratch table.
package zsdist
