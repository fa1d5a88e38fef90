package sequences

// Size will iterate over and count the total number of elements.
//
// It never returns for a cycling sequence, limit those first.
func (s *Sequence[K, V]) Size() int {
	var total int
	for s.Restart(); !s.AtEnd(); s.Advance() {
		total++
	}
	return total
}
