package sequences

import (
	"github.com/adamluzsi/eloquent/must"
	"github.com/adamluzsi/eloquent/optional"
)

// First returns the first element, or an absent Optional for an empty sequence.
// A nil first element is a NullReference violation, since an Optional can't hold it.
func (s *Sequence[K, V]) First() optional.Optional[V] {
	s.Restart()
	if s.AtEnd() {
		return optional.Absent[V]()
	}
	return must.Must(optional.Of(s.Current()))
}

// IsEmpty tells if the sequence has no element.
func (s *Sequence[K, V]) IsEmpty() bool {
	s.Restart()
	return s.AtEnd()
}
