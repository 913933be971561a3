// Package seqs bridges iter.Seq and option.Option.
package seqs

import (
	"iter"

	"github.com/Jordan466/OptionRecords/option"
)

// First returns the first element of seq matching predicate, or None.
// It stops pulling from seq after a match.
func First[T any](seq iter.Seq[T], predicate func(T) bool) option.Option[T] {
	for v := range seq {
		if predicate(v) {
			return option.Some(v)
		}
	}
	return option.None[T]()
}

// Choose maps every element of seq and yields the Some results.
func Choose[T, U any](seq iter.Seq[T], f func(T) option.Option[U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if u, ok := f(v).Unwrap(); ok && !yield(u) {
				return
			}
		}
	}
}

// Somes yields the values of the Some elements of seq.
func Somes[T any](seq iter.Seq[option.Option[T]]) iter.Seq[T] {
	return Choose(seq, func(o option.Option[T]) option.Option[T] { return o })
}
