package order_test

import (
	"testing"

	"kitchenops/internal/core/domain/model/order"
	"kitchenops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Draft,
		order.Pending,
		order.Confirmed,
		order.Preparing,
		order.Ready,
		order.Delivering,
		order.Delivered,
		order.Cancelled,
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, s := range allStatuses() {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown is invalid", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
	})

	t.Run("out of range is invalid", func(t *testing.T) {
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "draft", order.Draft.String())
	assert.Equal(t, "confirmed", order.Confirmed.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, s := range allStatuses() {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unrecognized value", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown is not parseable", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")
		require.Error(t, err)
	})
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Draft:      {order.Pending, order.Cancelled},
		order.Pending:    {order.Confirmed, order.Cancelled},
		order.Confirmed:  {order.Preparing, order.Cancelled},
		order.Preparing:  {order.Ready, order.Cancelled},
		order.Ready:      {order.Delivering, order.Delivered, order.Cancelled},
		order.Delivering: {order.Delivered, order.Cancelled},
		order.Delivered:  {},
		order.Cancelled:  {},
	}

	// Every pair in the table validates, every pair absent from it fails.
	for _, from := range allStatuses() {
		allowedSet := make(map[order.Status]bool)
		for _, to := range allowed[from] {
			allowedSet[to] = true
		}

		for _, to := range allStatuses() {
			err := from.ValidateTransition(to)
			if allowedSet[to] {
				require.NoError(t, err, "%s -> %s", from, to)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s", from, to)
			}
			assert.Equal(t, allowedSet[to], from.IsValidTransition(to))
		}
	}
}

func TestStatus_TerminalStatesHaveNoTransitions(t *testing.T) {
	assert.Empty(t, order.Delivered.ValidTransitions())
	assert.Empty(t, order.Cancelled.ValidTransitions())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
}

func TestStatus_EveryNonTerminalCanCancel(t *testing.T) {
	for _, s := range allStatuses() {
		if s.IsTerminal() {
			continue
		}
		assert.True(t, s.IsValidTransition(order.Cancelled), s.String())
	}
}

func TestStatus_ValidateTransition_InvalidSource(t *testing.T) {
	require.Error(t, order.Unknown.ValidateTransition(order.Pending))
	require.Error(t, order.Draft.ValidateTransition(order.Unknown))
}
