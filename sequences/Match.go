package sequences

import (
	"github.com/adamluzsi/eloquent/must"
	"github.com/adamluzsi/eloquent/optional"
	"github.com/adamluzsi/eloquent/preconditions"
	"github.com/adamluzsi/eloquent/reflects"
)

// AllMatch tells if every element satisfies the predicate.
// It is true for an empty sequence.
func (s *Sequence[K, V]) AllMatch(predicate func(V) bool) bool {
	predicate = checkFunc(predicate, "predicate")
	for v := range s.Values() {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// AnyMatch tells if at least one element satisfies the predicate.
// It is false for an empty sequence.
func (s *Sequence[K, V]) AnyMatch(predicate func(V) bool) bool {
	predicate = checkFunc(predicate, "predicate")
	for v := range s.Values() {
		if predicate(v) {
			return true
		}
	}
	return false
}

// Contains tells if any element is equal to target.
// Values are compared by value, and pointers by the value they point to.
// A nil target is a NullReference violation.
func (s *Sequence[K, V]) Contains(target V) bool {
	must.Must(preconditions.CheckNotNull(target, "target is nil"))
	return s.AnyMatch(func(v V) bool {
		return reflects.Equal(v, target)
	})
}

// FirstMatch returns the first element that satisfies the predicate, if there is any.
func (s *Sequence[K, V]) FirstMatch(predicate func(V) bool) optional.Optional[V] {
	return s.Filter(predicate).First()
}
