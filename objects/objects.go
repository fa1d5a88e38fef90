// Package objects holds small helpers over arbitrary values.
package objects

import (
	"github.com/adamluzsi/eloquent"
	"github.com/adamluzsi/eloquent/reflects"
)

// FirstNonNil returns the first value that is not null-equivalent.
// When every value is nil, or none is given, it returns a NullReference failure.
func FirstNonNil[T any](values ...T) (T, error) {
	for _, v := range values {
		if !reflects.IsNil(v) {
			return v, nil
		}
	}
	var zero T
	return zero, eloquent.ErrNullReference.F("No non null references passed in")
}
