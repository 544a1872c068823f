// Package optional provides a small generic container for values that may be
// absent.
//
// Most functions in this module report absence through a (value, ok) return
// pair, which is the natural Go idiom. The Value type exists for the cases
// where absents have to live *inside* a sequence or slice, such as the second
// element of the final pair produced by seq.TwoAtATime, or the per-pair
// gradients produced by geometry.SequentialGradients.
package optional

import "fmt"

// Value holds a value of type T that may be absent. The zero Value is absent.
type Value[T any] struct {
	value   T
	present bool
}

// Of returns a present Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// Empty returns an absent Value.
func Empty[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the held value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.present
}

// MustGet returns the held value, panicking if it is absent. Use only where
// absence would be a programming error.
func (v Value[T]) MustGet() T {
	if !v.present {
		panic("optional: MustGet on an absent value")
	}
	return v.value
}

// OrElse returns the held value if present, and fallback otherwise.
func (v Value[T]) OrElse(fallback T) T {
	if v.present {
		return v.value
	}
	return fallback
}

// IsPresent reports whether a value is held.
func (v Value[T]) IsPresent() bool {
	return v.present
}

// String renders the held value, or "<none>" when absent.
func (v Value[T]) String() string {
	if !v.present {
		return "<none>"
	}
	return fmt.Sprint(v.value)
}
