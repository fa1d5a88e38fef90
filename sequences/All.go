package sequences

import "iter"

// All restarts the sequence and returns an iterator over its key/value pairs,
// so it can be consumed with a range loop:
//
//	for k, v := range s.All() {
//		// ...
//	}
//
// Breaking out of the loop is the way to stop consuming an infinite sequence.
func (s *Sequence[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for s.Restart(); !s.AtEnd(); s.Advance() {
			if !yield(s.Key(), s.Current()) {
				return
			}
		}
	}
}

// Values is like All, but it yields the values only.
func (s *Sequence[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for s.Restart(); !s.AtEnd(); s.Advance() {
			if !yield(s.Current()) {
				return
			}
		}
	}
}
