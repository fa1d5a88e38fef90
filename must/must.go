// Package must is a syntax sugar package to make the use of `Must` functions.
//
// The `must` package provides an easy way to make functions panic on error.
// The sequences use it where the cursor protocol has no error result,
// and a violation is a programming error that can't be meaningfully recovered.
// For example, the two variant functions behave the same:
//
//	must.Must(optional.Of(v))
//	regexp.Must(regexp.Compile(`regexp`))
package must

// Must is a syntax sugar to express things like must.Must(optional.Of(v))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Nil panics with err when it is not nil.
// It is the counterpart of Must for calls that only return an error, like the precondition checks.
func Nil(err error) {
	if err != nil {
		panic(err)
	}
}
