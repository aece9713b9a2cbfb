package internal

import (
	"iter"
)

// SeqConcat yields every value of each sequence in turn.
func SeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// SeqCount yields each value of seq paired with its 1-based position.
func SeqCount[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := 0
		for val := range seq {
			n++
			if !yield(n, val) {
				return
			}
		}
	}
}
