package seq

import "iter"

// Cursor is a single-use, pull-style traversal of a sequence. Values drawn
// from a Cursor are consumed permanently; once Next reports exhaustion it will
// keep doing so. Callers that abandon a Cursor before exhaustion should call
// Stop to release the underlying coroutine.
type Cursor[V any] struct {
	next func() (V, bool)
	stop func()
}

// NewCursor starts a traversal of src and returns a Cursor over it.
func NewCursor[V any](src iter.Seq[V]) *Cursor[V] {
	next, stop := iter.Pull(src)
	return &Cursor[V]{next: next, stop: stop}
}

// Next draws the next value. The second return is false once the cursor is
// exhausted.
func (c *Cursor[V]) Next() (V, bool) {
	return c.next()
}

// Stop ends the traversal early. It is safe to call Stop more than once, or
// after exhaustion.
func (c *Cursor[V]) Stop() {
	c.stop()
}

// All drains the remaining values as a sequence. The returned sequence shares
// the cursor's state: it is single-pass, like the cursor itself.
func (c *Cursor[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := c.next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
