package sequences

import (
	"github.com/adamluzsi/eloquent"
	"github.com/adamluzsi/eloquent/logger"
	"github.com/adamluzsi/eloquent/must"
	"github.com/adamluzsi/eloquent/preconditions"
)

// Cycle returns an infinite Sequence that restarts s every time it is exhausted.
//
// The result never reaches its end, so consume it through Limit, FirstMatch,
// or by breaking out of All; Size and ToArray on it never return.
// When s is empty, Current, Key and Advance panic with an IllegalState failure.
func (s *Sequence[K, V]) Cycle() *Sequence[K, V] {
	return &Sequence[K, V]{cursor: &cycleCursor[K, V]{inner: s}}
}

type cycleCursor[K, V any] struct {
	inner eloquent.Cursor[K, V]
}

func (c *cycleCursor[K, V]) AtEnd() bool { return false }
func (c *cycleCursor[K, V]) Restart()    { c.inner.Restart() }

func (c *cycleCursor[K, V]) Current() V {
	c.checkNotEmpty()
	return c.inner.Current()
}

func (c *cycleCursor[K, V]) Key() K {
	c.checkNotEmpty()
	return c.inner.Key()
}

func (c *cycleCursor[K, V]) Advance() {
	c.checkNotEmpty()
	c.inner.Advance()
	if c.inner.AtEnd() {
		c.inner.Restart()
		logger.Debug("cycle restarted its sequence")
	}
}

// checkNotEmpty ensures the inner cursor rests on an element.
// An exhausted inner cursor gets one Restart, and if it is still at its end, it is empty.
func (c *cycleCursor[K, V]) checkNotEmpty() {
	if !c.inner.AtEnd() {
		return
	}
	c.inner.Restart()
	if c.inner.AtEnd() {
		logger.Warn("cycle over an empty sequence")
	}
	must.Nil(preconditions.CheckState(!c.inner.AtEnd(), "cycle over an empty sequence"))
}
