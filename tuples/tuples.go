// Package tuples provides small fixed-arity value types.
//
// The typed fields are the primary, type-safe interface. Each tuple also
// supports positional traversal of its (boxed) elements via Elements, for the
// rare generic consumer that wants to walk a tuple without knowing its field
// types. Tuples are plain values: equality is structural and copies share no
// state.
package tuples

import (
	"fmt"
	"iter"
)

// Pair is an immutable 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair returns a Pair of the two given values.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Elements traverses the pair's elements in positional order.
func (p Pair[A, B]) Elements() iter.Seq[any] {
	return func(yield func(any) bool) {
		if !yield(p.First) {
			return
		}
		yield(p.Second)
	}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Triple is an immutable 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// NewTriple returns a Triple of the three given values.
func NewTriple[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{First: first, Second: second, Third: third}
}

// Elements traverses the triple's elements in positional order.
func (t Triple[A, B, C]) Elements() iter.Seq[any] {
	return func(yield func(any) bool) {
		if !yield(t.First) {
			return
		}
		if !yield(t.Second) {
			return
		}
		yield(t.Third)
	}
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}

// Quad is an immutable 4-tuple.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// NewQuad returns a Quad of the four given values.
func NewQuad[A, B, C, D any](first A, second B, third C, fourth D) Quad[A, B, C, D] {
	return Quad[A, B, C, D]{First: first, Second: second, Third: third, Fourth: fourth}
}

// Elements traverses the quad's elements in positional order.
func (q Quad[A, B, C, D]) Elements() iter.Seq[any] {
	return func(yield func(any) bool) {
		if !yield(q.First) {
			return
		}
		if !yield(q.Second) {
			return
		}
		if !yield(q.Third) {
			return
		}
		yield(q.Fourth)
	}
}

func (q Quad[A, B, C, D]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.First, q.Second, q.Third, q.Fourth)
}
