// Package preconditions holds the argument and state checks used at the boundaries of the library.
//
// Every check returns nil when the condition holds,
// otherwise a failure of the matching kind from the eloquent package,
// carrying the given message or the check's default message.
package preconditions

import (
	"errors"

	"github.com/adamluzsi/eloquent"
	"github.com/adamluzsi/eloquent/consterror"
	"github.com/adamluzsi/eloquent/reflects"
)

const (
	DefaultNullReferenceMessage   = "Null reference given"
	DefaultIllegalArgumentMessage = "Illegal argument received"
	// DefaultIllegalStateMessage intentionally matches DefaultIllegalArgumentMessage,
	// callers already depend on the literal text.
	DefaultIllegalStateMessage = "Illegal argument received"
)

// CheckNotNull returns ref when it is not a null-equivalent value,
// otherwise a NullReference failure.
func CheckNotNull[T any](ref T, msg ...string) (T, error) {
	if reflects.IsNil(ref) {
		return ref, fail(eloquent.ErrNullReference, msg, DefaultNullReferenceMessage)
	}
	return ref, nil
}

// CheckArgument returns an IllegalArgument failure when expr is false.
func CheckArgument(expr bool, msg ...string) error {
	if !expr {
		return fail(eloquent.ErrIllegalArgument, msg, DefaultIllegalArgumentMessage)
	}
	return nil
}

// CheckState returns an IllegalState failure when expr is false.
func CheckState(expr bool, msg ...string) error {
	if !expr {
		return fail(eloquent.ErrIllegalState, msg, DefaultIllegalStateMessage)
	}
	return nil
}

func fail(kind consterror.Error, msg []string, defaultMessage string) error {
	return kind.Wrap(errors.New(orDefaultMessage(msg, defaultMessage)))
}

func orDefaultMessage(msg []string, defaultMessage string) string {
	if len(msg) == 0 {
		return defaultMessage
	}
	return msg[0]
}
