// Package optional implements a box that distinguishes the presence of a value from its absence,
// without relying on a nil sentinel.
package optional

import (
	"fmt"

	"github.com/adamluzsi/eloquent"
	"github.com/adamluzsi/eloquent/preconditions"
	"github.com/adamluzsi/eloquent/reflects"
)

// Optional is an immutable value that either holds a non-nil value or is absent.
// The zero Optional is absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns a present Optional holding v.
// A null-equivalent v is a NullReference failure.
func Of[T any](v T) (Optional[T], error) {
	if _, err := preconditions.CheckNotNull(v); err != nil {
		return Optional[T]{}, err
	}
	return Optional[T]{value: v, present: true}, nil
}

// Absent returns an Optional that holds no value.
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// FromNullable returns Absent for a null-equivalent v, otherwise the result of Of.
func FromNullable[T any](v T) Optional[T] {
	if reflects.IsNil(v) {
		return Absent[T]()
	}
	return Optional[T]{value: v, present: true}
}

// IsPresent reports whether the Optional holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the held value, or an IllegalState failure on an absent Optional.
func (o Optional[T]) Get() (T, error) {
	if o.present {
		return o.value, nil
	}
	return o.value, eloquent.ErrIllegalState.F("Get called on absent Optional")
}

// GetOrNull returns the held value or the zero value of T.
func (o Optional[T]) GetOrNull() T {
	return o.value
}

// GetOrElse returns the held value, or defaultValue on an absent Optional.
// defaultValue is checked even when the Optional is present.
func (o Optional[T]) GetOrElse(defaultValue T) (T, error) {
	if _, err := preconditions.CheckNotNull(defaultValue); err != nil {
		var zero T
		return zero, err
	}
	if o.present {
		return o.value, nil
	}
	return defaultValue, nil
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.absent()"
	}
	return fmt.Sprintf("Optional.of(%v)", o.value)
}
