// Package sequences implements lazy, restartable sequences of key/value pairs.
//
// A pipeline starts from a source (Wrap, WrapPairs, WrapCursor)
// and is extended with adapters (Filter, Transform, Map, Limit, Append, Cycle).
// Each adapter takes ownership of the sequence it wraps,
// so the wrapped sequence must not be consumed on its own afterwards.
// Values are pulled through the chain only when a terminal operation,
// like ToArray, Size or First, traverses the outermost sequence.
//
// Sequences are not safe for concurrent use.
package sequences

import (
	"github.com/adamluzsi/eloquent"
	"github.com/adamluzsi/eloquent/must"
	"github.com/adamluzsi/eloquent/preconditions"
)

// Sequence is the fluent handle of a pipeline stage.
// It implements eloquent.Cursor by delegating to the cursor it owns,
// and guards the protocol: Current, Key and Advance on an exhausted sequence panic with an IllegalState failure.
type Sequence[K, V any] struct {
	cursor eloquent.Cursor[K, V]
}

// WrapCursor exposes an externally supplied cursor as a Sequence.
// A nil cursor is a NullReference violation.
func WrapCursor[K, V any](c eloquent.Cursor[K, V]) *Sequence[K, V] {
	must.Must(preconditions.CheckNotNull(c, "cursor is nil"))
	if s, ok := c.(*Sequence[K, V]); ok {
		return s
	}
	return &Sequence[K, V]{cursor: c}
}

func (s *Sequence[K, V]) Current() V {
	s.checkNotAtEnd("Current")
	return s.cursor.Current()
}

func (s *Sequence[K, V]) Advance() {
	s.checkNotAtEnd("Advance")
	s.cursor.Advance()
}

func (s *Sequence[K, V]) Key() K {
	s.checkNotAtEnd("Key")
	return s.cursor.Key()
}

func (s *Sequence[K, V]) AtEnd() bool {
	return s.cursor.AtEnd()
}

func (s *Sequence[K, V]) Restart() {
	s.cursor.Restart()
}

func (s *Sequence[K, V]) checkNotAtEnd(op string) {
	must.Nil(preconditions.CheckState(!s.cursor.AtEnd(), op+" called on exhausted sequence"))
}

func checkFunc[F any](fn F, name string) F {
	return must.Must(preconditions.CheckNotNull(fn, name+" is nil"))
}

var _ eloquent.Cursor[int, int] = &Sequence[int, int]{}
