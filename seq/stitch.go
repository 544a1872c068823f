package seq

import "iter"

// StitchedCursors combines one or more cursors into a single cursor that
// round-robins between them: one value from the first, one from the second,
// and so on, wrapping back to the first.
//
// The combined cursor is exhausted the moment the cursor next due to be
// polled is itself exhausted. With inputs of unequal length the output is
// therefore a prefix that stops at the first hole in the cycle, not a full
// traversal of the longest input; values already drawn from other cursors in
// that final incomplete cycle are retained.
//
// The input cursors are consumed destructively and must not be used again by
// the caller.
func StitchedCursors[V any](first *Cursor[V], others ...*Cursor[V]) *Cursor[V] {
	cursors := make([]*Cursor[V], 0, len(others)+1)
	cursors = append(cursors, first)
	cursors = append(cursors, others...)

	index := 0
	return &Cursor[V]{
		next: func() (V, bool) {
			v, ok := cursors[index%len(cursors)].Next()
			if !ok {
				var zero V
				return zero, false
			}
			index++
			return v, true
		},
		stop: func() {
			for _, c := range cursors {
				c.Stop()
			}
		},
	}
}

// Stitched is the restartable form of StitchedCursors: it combines one or
// more sequences into a derived sequence with the same round-robin order and
// truncation rule. Each traversal of the result starts a fresh, independent
// traversal of every input, so re-iterating is safe and repeatable as long as
// the inputs themselves are restartable.
func Stitched[V any](first iter.Seq[V], others ...iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		rest := make([]*Cursor[V], 0, len(others))
		for _, src := range others {
			rest = append(rest, NewCursor(src))
		}
		stitched := StitchedCursors(NewCursor(first), rest...)
		defer stitched.Stop()

		for {
			v, ok := stitched.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
