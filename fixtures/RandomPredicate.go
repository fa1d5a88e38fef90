package fixtures

import "github.com/Pallinder/go-randomdata"

// RandomIntPredicate returns one of a few commonly used predicates over integers.
func RandomIntPredicate() func(int) bool {
	threshold := randomdata.Number(-50, 50)
	predicates := []func(int) bool{
		func(n int) bool { return 0 < n },
		func(n int) bool { return n%2 == 0 },
		func(n int) bool { return threshold <= n },
		func(n int) bool { return n < threshold },
	}
	return predicates[randomdata.Number(0, len(predicates))]
}

// Not negates a predicate.
func Not[T any](predicate func(T) bool) func(T) bool {
	return func(v T) bool { return !predicate(v) }
}
