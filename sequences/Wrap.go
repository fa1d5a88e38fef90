package sequences

import "github.com/adamluzsi/eloquent"

// Wrap returns a Sequence over the values of a slice, keyed by their index.
// The slice is read lazily and not copied.
func Wrap[V any](values []V) *Sequence[int, V] {
	return &Sequence[int, V]{cursor: &sliceCursor[V]{values: values}}
}

// WrapPairs returns a Sequence over caller supplied key/value pairs, in the given order.
func WrapPairs[K, V any](pairs ...eloquent.Pair[K, V]) *Sequence[K, V] {
	return &Sequence[K, V]{cursor: &pairsCursor[K, V]{pairs: pairs}}
}

type sliceCursor[V any] struct {
	values []V
	index  int
}

func (c *sliceCursor[V]) Current() V  { return c.values[c.index] }
func (c *sliceCursor[V]) Advance()    { c.index++ }
func (c *sliceCursor[V]) Key() int    { return c.index }
func (c *sliceCursor[V]) AtEnd() bool { return len(c.values) <= c.index }
func (c *sliceCursor[V]) Restart()    { c.index = 0 }

type pairsCursor[K, V any] struct {
	pairs []eloquent.Pair[K, V]
	index int
}

func (c *pairsCursor[K, V]) Current() V  { return c.pairs[c.index].Value }
func (c *pairsCursor[K, V]) Advance()    { c.index++ }
func (c *pairsCursor[K, V]) Key() K      { return c.pairs[c.index].Key }
func (c *pairsCursor[K, V]) AtEnd() bool { return len(c.pairs) <= c.index }
func (c *pairsCursor[K, V]) Restart()    { c.index = 0 }
