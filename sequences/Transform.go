package sequences

import "github.com/adamluzsi/eloquent"

// Transform returns a Sequence that applies fn to each value of s.
// Keys are passed through unchanged.
// fn is expected to be free of side effects, since it runs on every Current call.
func (s *Sequence[K, V]) Transform(fn func(V) V) *Sequence[K, V] {
	return Map(s, fn)
}

// Map allows you to do additional transformation on the values,
// including changing their type all together.
// Like when you read raw records, and then you map them to a certain data structure.
//
// Map is the type changing form of Sequence.Transform.
func Map[K, V, R any](s *Sequence[K, V], fn func(V) R) *Sequence[K, R] {
	return &Sequence[K, R]{cursor: &transformCursor[K, V, R]{
		inner:     s,
		transform: checkFunc(fn, "transformation"),
	}}
}

type transformCursor[K, V, R any] struct {
	inner     eloquent.Cursor[K, V]
	transform func(V) R
}

func (c *transformCursor[K, V, R]) Current() R  { return c.transform(c.inner.Current()) }
func (c *transformCursor[K, V, R]) Advance()    { c.inner.Advance() }
func (c *transformCursor[K, V, R]) Key() K      { return c.inner.Key() }
func (c *transformCursor[K, V, R]) AtEnd() bool { return c.inner.AtEnd() }
func (c *transformCursor[K, V, R]) Restart()    { c.inner.Restart() }
