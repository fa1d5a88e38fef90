package sequences

import (
	"github.com/adamluzsi/eloquent"
	"github.com/adamluzsi/eloquent/logger"
)

// Filter returns a Sequence of the elements that satisfy the predicate.
//
// The returned sequence never rests on a rejected element:
// building it, and every Restart, restarts s and skips ahead to the first match.
func (s *Sequence[K, V]) Filter(predicate func(V) bool) *Sequence[K, V] {
	c := &filterCursor[K, V]{
		inner:     s,
		predicate: checkFunc(predicate, "predicate"),
	}
	c.Restart()
	return &Sequence[K, V]{cursor: c}
}

type filterCursor[K, V any] struct {
	inner     eloquent.Cursor[K, V]
	predicate func(V) bool
}

func (c *filterCursor[K, V]) Current() V  { return c.inner.Current() }
func (c *filterCursor[K, V]) Key() K      { return c.inner.Key() }
func (c *filterCursor[K, V]) AtEnd() bool { return c.inner.AtEnd() }

func (c *filterCursor[K, V]) Advance() {
	c.inner.Advance()
	c.seek()
}

func (c *filterCursor[K, V]) Restart() {
	c.inner.Restart()
	if skipped := c.seek(); 0 < skipped && logger.IsEnabled(logger.LevelDebug) {
		logger.Debug("filter skipped leading non-matching elements", logger.Field("skipped", skipped))
	}
}

// seek moves the inner cursor forward until it rests on a match or reaches its end.
func (c *filterCursor[K, V]) seek() (skipped int) {
	for !c.inner.AtEnd() && !c.predicate(c.inner.Current()) {
		c.inner.Advance()
		skipped++
	}
	return skipped
}
