package sequences

import (
	"github.com/adamluzsi/eloquent"
	"github.com/adamluzsi/eloquent/logger"
	"github.com/adamluzsi/eloquent/must"
	"github.com/adamluzsi/eloquent/preconditions"
)

// Append returns a Sequence that traverses the elements of s, followed by the elements of other.
//
// Keys are passed through from both sources as they are,
// thus positional keys start over at the boundary.
// Re-key the result with WrapPairs when unique keys are needed.
//
// The result takes ownership of both sequences, so other must not share a cursor with s.
// Appending s to itself is an IllegalArgument violation;
// build a second, independent sequence over the same values instead.
func (s *Sequence[K, V]) Append(other eloquent.Cursor[K, V]) *Sequence[K, V] {
	second := WrapCursor(other)
	must.Nil(preconditions.CheckArgument(second != s, "sequence can't be appended to itself"))
	return &Sequence[K, V]{cursor: &appendCursor[K, V]{
		first:   s,
		second:  second,
		onFirst: true,
	}}
}

// AppendElements returns a Sequence that traverses the elements of s, followed by values.
// The appended values are keyed by their position among values.
func AppendElements[V any](s *Sequence[int, V], values ...V) *Sequence[int, V] {
	return s.Append(Wrap(values))
}

type appendCursor[K, V any] struct {
	first   eloquent.Cursor[K, V]
	second  eloquent.Cursor[K, V]
	onFirst bool
}

func (c *appendCursor[K, V]) Current() V  { return c.active().Current() }
func (c *appendCursor[K, V]) Advance()    { c.active().Advance() }
func (c *appendCursor[K, V]) Key() K      { return c.active().Key() }
func (c *appendCursor[K, V]) AtEnd() bool { return c.active().AtEnd() }

func (c *appendCursor[K, V]) Restart() {
	c.first.Restart()
	c.second.Restart()
	c.onFirst = true
}

// active returns the cursor in use.
// Once the first cursor is exhausted, the second one stays active until Restart.
func (c *appendCursor[K, V]) active() eloquent.Cursor[K, V] {
	if c.onFirst && c.first.AtEnd() {
		c.onFirst = false
		logger.Debug("append switched to the second sequence")
	}
	if c.onFirst {
		return c.first
	}
	return c.second
}
