// Package editscript implements the lazy edit-script algebra the
// distance solver builds its dynamic program out of: a small tagged
// variant (INSERT, REMOVE, COMBINE, COMBINE_UPDATE, COMBINE_MATCH,
// LIST) plus two materialization operations, Count and Flatten.
//
// A non-LIST Script is O(1) to build — it only ever references
// previously built Scripts, never copies them — so a solver cell
// update never pays more than constant extra work. CloneToList is the
// one operation that walks a Script's full shape; the solver calls it
// exactly once per finalized subtree-pair subproblem, which is what
// keeps the whole distance computation bounded.
package editscript
