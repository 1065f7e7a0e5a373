package freight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuoteTransition(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		for _, tc := range [][2]string{
			{QuoteStatusDraft, QuoteStatusPending},
			{QuoteStatusPending, QuoteStatusAccepted},
			{QuoteStatusPending, QuoteStatusExpired},
			{QuoteStatusPending, QuoteStatusDeclined},
		} {
			assert.NoError(t, ValidateQuoteTransition(tc[0], tc[1]), "%s -> %s", tc[0], tc[1])
		}
	})

	t.Run("rejected", func(t *testing.T) {
		for _, tc := range [][2]string{
			{QuoteStatusDraft, QuoteStatusAccepted},
			{QuoteStatusAccepted, QuoteStatusPending},
			{QuoteStatusDeclined, QuoteStatusAccepted},
			{QuoteStatusExpired, QuoteStatusPending},
		} {
			assert.Error(t, ValidateQuoteTransition(tc[0], tc[1]), "%s -> %s", tc[0], tc[1])
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		assert.Error(t, ValidateQuoteTransition(QuoteStatusDraft, "archived"))
	})
}

func TestValidateDispatchTransition(t *testing.T) {
	t.Run("forward sequence one step at a time", func(t *testing.T) {
		seq := []string{
			DispatchStatusPending,
			DispatchStatusDispatched,
			DispatchStatusAtPickup,
			DispatchStatusInTransit,
			DispatchStatusAtDelivery,
			DispatchStatusDelivered,
			DispatchStatusCompleted,
		}
		for i := 0; i < len(seq)-1; i++ {
			require.NoError(t, ValidateDispatchTransition(seq[i], seq[i+1]), "%s -> %s", seq[i], seq[i+1])
		}
	})

	t.Run("backward moves rejected", func(t *testing.T) {
		assert.Error(t, ValidateDispatchTransition(DispatchStatusDelivered, DispatchStatusDispatched))
		assert.Error(t, ValidateDispatchTransition(DispatchStatusInTransit, DispatchStatusAtPickup))
	})

	t.Run("skips rejected", func(t *testing.T) {
		assert.Error(t, ValidateDispatchTransition(DispatchStatusPending, DispatchStatusInTransit))
		assert.Error(t, ValidateDispatchTransition(DispatchStatusDispatched, DispatchStatusDelivered))
	})

	t.Run("cancelled reachable from any non-terminal status", func(t *testing.T) {
		for _, from := range []string{
			DispatchStatusPending,
			DispatchStatusDispatched,
			DispatchStatusAtPickup,
			DispatchStatusInTransit,
			DispatchStatusAtDelivery,
			DispatchStatusDelivered,
		} {
			assert.NoError(t, ValidateDispatchTransition(from, DispatchStatusCancelled), "%s -> cancelled", from)
		}
	})

	t.Run("terminal statuses accept nothing", func(t *testing.T) {
		assert.Error(t, ValidateDispatchTransition(DispatchStatusCompleted, DispatchStatusCancelled))
		assert.Error(t, ValidateDispatchTransition(DispatchStatusCancelled, DispatchStatusPending))
	})

	t.Run("unknown statuses rejected", func(t *testing.T) {
		assert.Error(t, ValidateDispatchTransition(DispatchStatusPending, "teleported"))
		assert.Error(t, ValidateDispatchTransition("limbo", DispatchStatusDispatched))
	})
}

func TestDispatchTerminal(t *testing.T) {
	assert.True(t, DispatchTerminal(DispatchStatusCompleted))
	assert.True(t, DispatchTerminal(DispatchStatusCancelled))
	assert.False(t, DispatchTerminal(DispatchStatusDelivered))
	assert.False(t, DispatchTerminal(DispatchStatusPending))
}
