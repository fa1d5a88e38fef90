package eloquent

// Cursor define a separate object that encapsulates accessing and traversing an aggregate of key/value pairs.
// Clients use a cursor to traverse an aggregate without knowing its representation (data structures).
//
// A Cursor is not safe for concurrent use.
type Cursor[K, V any] interface {
	// Current returns the value at the cursor position.
	// Calling it when AtEnd reports true is an IllegalState violation.
	Current() V
	// Advance moves the cursor forward by exactly one logical element.
	// Calling it when AtEnd reports true is an IllegalState violation.
	Advance()
	// Key returns the key of the current element.
	// Keys are positional or caller supplied identifiers, they don't need to be unique.
	Key() K
	// AtEnd reports that no further Current call is valid until Restart.
	AtEnd() bool
	// Restart positions the cursor on the first logical element.
	Restart()
}

// Pair is a single key/value element of a keyed source.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// PairOf is a syntax sugar to build a Pair without spelling out its type parameters.
func PairOf[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}
