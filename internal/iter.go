package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}

// IterSeq2Sorted yields the pairs of seq ordered by key. For repeated keys,
// the last value seen wins.
func IterSeq2Sorted[K cmp.Ordered, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		pairs := maps.Collect(seq)
		for _, key := range slices.Sorted(maps.Keys(pairs)) {
			if !yield(key, pairs[key]) {
				return
			}
		}
	}
}
