package sequences

import (
	"github.com/adamluzsi/eloquent/must"
	"github.com/adamluzsi/eloquent/optional"
)

// Last drains the sequence and returns its last element,
// or an absent Optional for an empty sequence.
func (s *Sequence[K, V]) Last() optional.Optional[V] {
	var (
		last  V
		found bool
	)
	for v := range s.Values() {
		last, found = v, true
	}
	if !found {
		return optional.Absent[V]()
	}
	return must.Must(optional.Of(last))
}
