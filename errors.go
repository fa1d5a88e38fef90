package eloquent

import "github.com/adamluzsi/eloquent/consterror"

const (
	// ErrNullReference is the failure kind of a nil value given where it is forbidden.
	ErrNullReference consterror.Error = "NullReference"
	// ErrIllegalArgument is the failure kind of an argument that violates a precondition.
	ErrIllegalArgument consterror.Error = "IllegalArgument"
	// ErrIllegalState is the failure kind of an operation invoked while the object's state forbids it.
	ErrIllegalState consterror.Error = "IllegalState"
)
