package sequences_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/eloquent"
	"github.com/adamluzsi/eloquent/sequences"
)

// IntCursor is the cursor protocol instantiated for MockIntCursor.
type IntCursor interface {
	eloquent.Cursor[int, int]
}

func requirePanicsWith(tb testing.TB, kind error, blk func()) {
	tb.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(tb, ok, "expected a panic with an error value, got: %#v", r)
		require.True(tb, errors.Is(err, kind), "unexpected error: %v", err)
	}()
	blk()
}

func requireSameValues[V any](tb testing.TB, expected, actual []V) {
	tb.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		tb.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

type keyValue[K, V any] struct {
	Key   K
	Value V
}

func collectPairs[K, V any](s *sequences.Sequence[K, V]) []keyValue[K, V] {
	kvs := make([]keyValue[K, V], 0)
	for k, v := range s.All() {
		kvs = append(kvs, keyValue[K, V]{Key: k, Value: v})
	}
	return kvs
}

func isPositive(n int) bool { return 0 < n }

// newMockIntCursorOver returns a mock that behaves like a cursor over values, keyed by index.
func newMockIntCursorOver(ctrl *gomock.Controller, values []int) *MockIntCursor {
	var index int
	m := NewMockIntCursor(ctrl)
	m.EXPECT().Restart().Do(func() { index = 0 }).AnyTimes()
	m.EXPECT().Advance().Do(func() { index++ }).AnyTimes()
	m.EXPECT().AtEnd().DoAndReturn(func() bool { return len(values) <= index }).AnyTimes()
	m.EXPECT().Key().DoAndReturn(func() int { return index }).AnyTimes()
	m.EXPECT().Current().DoAndReturn(func() int { return values[index] }).AnyTimes()
	return m
}
