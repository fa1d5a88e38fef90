// Package cursorcontracts holds reusable test suites for implementations of eloquent.Cursor.
package cursorcontracts

import (
	"errors"
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/eloquent"
)

// Cursor is the contract of the cursor protocol.
// The function must return a fresh, finite cursor that yields at least one element,
// and that guards its protocol, like the sequences do.
type Cursor[K, V any] func(tb testing.TB) eloquent.Cursor[K, V]

func (c Cursor[K, V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Cursor[K, V]) Spec(s *testcase.Spec) {
	s.Describe(`it behaves like a cursor`, func(s *testcase.Spec) {
		s.Let(`cursor`, func(t *testcase.T) interface{} {
			return c(t)
		})
		subject := func(t *testcase.T) eloquent.Cursor[K, V] {
			return t.I(`cursor`).(eloquent.Cursor[K, V])
		}

		s.Then(`after restart it rests on a valid element`, func(t *testcase.T) {
			cur := subject(t)
			cur.Restart()
			require.False(t, cur.AtEnd(), `the cursor is expected to yield at least one element`)
			require.NotPanics(t, func() { cur.Key() })
			require.NotPanics(t, func() { cur.Current() })
		})

		s.Then(`restart is idempotent`, func(t *testcase.T) {
			cur := subject(t)
			cur.Restart()
			key, value := cur.Key(), cur.Current()
			cur.Restart()
			cur.Restart()
			require.Equal(t, key, cur.Key())
			require.Equal(t, value, cur.Current())
		})

		s.Then(`traversing it twice yields the same pairs`, func(t *testcase.T) {
			cur := subject(t)
			require.Equal(t, drain(cur), drain(cur))
		})

		s.Then(`restart rewinds a partially consumed cursor`, func(t *testcase.T) {
			cur := subject(t)
			all := drain(cur)
			cur.Restart()
			cur.Advance()
			cur.Restart()
			require.Equal(t, all, drain(cur))
		})

		s.When(`it is exhausted`, func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				drain(subject(t))
				require.True(t, subject(t).AtEnd())
			})

			s.Then(`Current is an illegal state`, func(t *testcase.T) {
				requireIllegalState(t, func() { subject(t).Current() })
			})

			s.Then(`Key is an illegal state`, func(t *testcase.T) {
				requireIllegalState(t, func() { subject(t).Key() })
			})

			s.Then(`Advance is an illegal state`, func(t *testcase.T) {
				requireIllegalState(t, func() { subject(t).Advance() })
			})

			s.Then(`restart makes it usable again`, func(t *testcase.T) {
				subject(t).Restart()
				require.False(t, subject(t).AtEnd())
			})
		})
	})
}

type pair struct {
	Key   interface{}
	Value interface{}
}

func drain[K, V any](c eloquent.Cursor[K, V]) []pair {
	var ps []pair
	for c.Restart(); !c.AtEnd(); c.Advance() {
		ps = append(ps, pair{Key: c.Key(), Value: c.Current()})
	}
	return ps
}

func requireIllegalState(tb testing.TB, blk func()) {
	tb.Helper()
	defer func() {
		err, ok := recover().(error)
		require.True(tb, ok, `a panic with an error value was expected`)
		require.True(tb, errors.Is(err, eloquent.ErrIllegalState), `unexpected error: %v`, err)
	}()
	blk()
}
