package sequences

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// ToArray returns every value in iteration order, without the keys.
func (s *Sequence[K, V]) ToArray() []V {
	vs := make([]V, 0)
	for v := range s.Values() {
		vs = append(vs, v)
	}
	return vs
}

// ToSortedArrayFunc returns ToArray sorted with less.
// The sort is stable, equal elements keep their iteration order.
func (s *Sequence[K, V]) ToSortedArrayFunc(less func(a, b V) bool) []V {
	less = checkFunc(less, "less")
	vs := s.ToArray()
	sort.SliceStable(vs, func(i, j int) bool { return less(vs[i], vs[j]) })
	return vs
}

// ToSortedArray returns ToArray in ascending natural order.
func ToSortedArray[K any, V constraints.Ordered](s *Sequence[K, V]) []V {
	return s.ToSortedArrayFunc(func(a, b V) bool { return a < b })
}

// ToMap returns a map whose keys are the distinct elements of s,
// and whose values are computed by valueFn.
// For duplicate elements, the last computed value wins.
func ToMap[K any, V comparable, R any](s *Sequence[K, V], valueFn func(V) R) map[V]R {
	valueFn = checkFunc(valueFn, "value function")
	m := make(map[V]R)
	for v := range s.Values() {
		m[v] = valueFn(v)
	}
	return m
}

// ToSet returns the distinct elements of s, in the order of their first occurrence.
func ToSet[K any, V comparable](s *Sequence[K, V]) []V {
	var (
		vs   = make([]V, 0)
		seen = make(map[V]struct{})
	)
	for v := range s.Values() {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		vs = append(vs, v)
	}
	return vs
}
