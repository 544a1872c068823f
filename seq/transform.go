package seq

import (
	"iter"
	"slices"

	"github.com/Areteos/arete-utilities/optional"
	"github.com/Areteos/arete-utilities/tuples"
)

// Reversed returns a restartable sequence over the elements of original,
// back to front. Each traversal takes an immutable snapshot of the slice's
// current contents, so mutating original between traversals is safe and is
// reflected by the next traversal. Mutation during a traversal is undefined.
func Reversed[V any](original []V) iter.Seq[V] {
	return func(yield func(V) bool) {
		snapshot := slices.Clone(original)
		for i := len(snapshot) - 1; i >= 0; i-- {
			if !yield(snapshot[i]) {
				return
			}
		}
	}
}

// Zipped pairs up corresponding elements of two sequences positionally. The
// result stops as soon as either input is exhausted, so its length is the
// minimum of the two input lengths; no input is read past that point.
func Zipped[A, B any](first iter.Seq[A], second iter.Seq[B]) iter.Seq[tuples.Pair[A, B]] {
	return func(yield func(tuples.Pair[A, B]) bool) {
		next, stop := iter.Pull(second)
		defer stop()
		for a := range first {
			b, ok := next()
			if !ok {
				return
			}
			if !yield(tuples.NewPair(a, b)) {
				return
			}
		}
	}
}

// ZipToSlice zips two sequences and materialises the result.
func ZipToSlice[A, B any](first iter.Seq[A], second iter.Seq[B]) []tuples.Pair[A, B] {
	result := make([]tuples.Pair[A, B], 0)
	for pair := range Zipped(first, second) {
		result = append(result, pair)
	}
	return result
}

// Unzipped is the inverse of Zipped: it fully materialises a sequence of
// pairs into two slices, firsts and seconds, preserving order.
func Unzipped[A, B any](zipped iter.Seq[tuples.Pair[A, B]]) ([]A, []B) {
	firsts := make([]A, 0)
	seconds := make([]B, 0)
	for pair := range zipped {
		firsts = append(firsts, pair.First)
		seconds = append(seconds, pair.Second)
	}
	return firsts, seconds
}

// TwoAtATime yields non-overlapping consecutive pairs (e0,e1), (e2,e3), ...
// from original. If the input length is odd the final pair holds an absent
// second element. An empty input yields nothing.
func TwoAtATime[V any](original iter.Seq[V]) iter.Seq[tuples.Pair[V, optional.Value[V]]] {
	return func(yield func(tuples.Pair[V, optional.Value[V]]) bool) {
		next, stop := iter.Pull(original)
		defer stop()
		for {
			first, ok := next()
			if !ok {
				return
			}
			second := optional.Empty[V]()
			if v, ok := next(); ok {
				second = optional.Of(v)
			}
			if !yield(tuples.NewPair(first, second)) {
				return
			}
		}
	}
}

// InPairs yields every overlapping consecutive pair (e0,e1), (e1,e2), ... of
// original. Inputs with fewer than two elements yield nothing; otherwise the
// result has exactly one fewer element than the input.
func InPairs[V any](original iter.Seq[V]) iter.Seq[tuples.Pair[V, V]] {
	return func(yield func(tuples.Pair[V, V]) bool) {
		var previous V
		havePrevious := false
		for v := range original {
			if havePrevious {
				if !yield(tuples.NewPair(previous, v)) {
					return
				}
			}
			previous = v
			havePrevious = true
		}
	}
}

// ButFirst returns a sequence identical to original except that, as soon as a
// traversal begins, the first element is drawn eagerly and handed to onFirst;
// the traversal then yields the remaining elements. onFirst runs exactly once
// per traversal start, even if nothing is ever consumed from the result.
//
// Panics if original is empty: there is no first element to extract.
func ButFirst[V any](original iter.Seq[V], onFirst func(V)) iter.Seq[V] {
	return func(yield func(V) bool) {
		next, stop := iter.Pull(original)
		defer stop()

		first, ok := next()
		if !ok {
			panic("seq: ButFirst on an empty sequence")
		}
		onFirst(first)

		for {
			v, ok := next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// CastSlice materialises a sequence of boxed values into a slice of their
// concrete type. Panics if any element is not an E: passing a sequence with
// mixed dynamic types is a programming error.
func CastSlice[E any](items iter.Seq[any]) []E {
	result := make([]E, 0)
	for item := range items {
		result = append(result, item.(E))
	}
	return result
}
