// Package seq provides lazy transformers and full-traversal reductions over
// generic sequences.
//
// A sequence is an iter.Seq[V]. Transformers return derived sequences that
// produce values on demand without materialising their inputs; functions whose
// names mention slices materialise, for convenience.
//
// Two traversal capabilities are kept deliberately distinct:
//
//   - A Cursor is a single-use pull iterator. Drawing a value consumes it
//     permanently; a Cursor must not be shared or reused after exhaustion.
//   - An iter.Seq built from restartable sources (slices, or other restartable
//     sequences) may be ranged over repeatedly, each traversal seeing a fresh,
//     independent view.
//
// Neither form is safe for simultaneous traversal from multiple goroutines
// without external synchronisation; restartable sequences are safe to
// re-traverse sequentially.
//
// Transformers are valid for inputs of any length, including empty, and never
// read past the logical end of an input. This matters for Stitched and Zipped,
// whose inputs may be unbounded or side-effecting.
package seq
