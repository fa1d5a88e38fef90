package sequences

import (
	"github.com/adamluzsi/eloquent"
	"github.com/adamluzsi/eloquent/must"
	"github.com/adamluzsi/eloquent/preconditions"
)

// Limit returns a Sequence that ends after at most n elements of s.
// A negative n is an IllegalArgument violation, and zero yields an empty sequence.
func (s *Sequence[K, V]) Limit(n int) *Sequence[K, V] {
	must.Nil(preconditions.CheckArgument(0 <= n, "limit must not be negative"))
	return &Sequence[K, V]{cursor: &limitCursor[K, V]{inner: s, limit: n}}
}

type limitCursor[K, V any] struct {
	inner eloquent.Cursor[K, V]
	limit int
	seen  int
}

func (c *limitCursor[K, V]) Current() V { return c.inner.Current() }
func (c *limitCursor[K, V]) Key() K     { return c.inner.Key() }

func (c *limitCursor[K, V]) Advance() {
	c.inner.Advance()
	c.seen++
}

func (c *limitCursor[K, V]) AtEnd() bool {
	return c.limit <= c.seen || c.inner.AtEnd()
}

func (c *limitCursor[K, V]) Restart() {
	c.inner.Restart()
	c.seen = 0
}
