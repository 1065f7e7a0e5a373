package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/internal/database/models"
	"freightflow/internal/freight"
)

func draftQuote() *models.Quote {
	notes := "call ahead"
	return &models.Quote{
		ID:          3,
		QuoteNumber: "QT-240301-ABC123",
		CustomerID:  1,
		ServiceType: "drayage",
		PickupDate:  "2024-03-05",
		Rates: models.RateBreakdown{
			BaseRate:      "1000.00",
			FuelSurcharge: "150.00",
		},
		TotalRate:     "1150.00",
		MarginPercent: "21.74",
		Status:        freight.QuoteStatusDraft,
		Notes:         &notes,
	}
}

func TestApplyQuoteUpdate(t *testing.T) {
	t.Run("provided fields merge, unset fields stay", func(t *testing.T) {
		quote := draftQuote()
		serviceType := "ftl"
		err := applyQuoteUpdate(quote, UpdateQuoteRequest{ServiceType: &serviceType})
		require.NoError(t, err)

		assert.Equal(t, "ftl", quote.ServiceType)
		assert.Equal(t, "2024-03-05", quote.PickupDate)
		require.NotNil(t, quote.Notes)
		assert.Equal(t, "call ahead", *quote.Notes)
		assert.Equal(t, "1150.00", quote.TotalRate)
		assert.Equal(t, "21.74", quote.MarginPercent)
	})

	t.Run("new rates and cost basis reprice the quote", func(t *testing.T) {
		quote := draftQuote()
		err := applyQuoteUpdate(quote, UpdateQuoteRequest{
			Rates: &models.RateBreakdown{
				BaseRate:      "1000.00",
				FuelSurcharge: "150.00",
			},
			CostBasis: "900.00",
		})
		require.NoError(t, err)

		assert.Equal(t, "1150.00", quote.TotalRate)
		assert.Equal(t, "21.74", quote.MarginPercent)
	})

	t.Run("new rates without cost basis keep the implied cost", func(t *testing.T) {
		quote := draftQuote()
		err := applyQuoteUpdate(quote, UpdateQuoteRequest{
			Rates: &models.RateBreakdown{BaseRate: "2000.00"},
		})
		require.NoError(t, err)

		// implied cost 899.99, so (2000 - 899.99) / 2000 * 100 = 55.00
		assert.Equal(t, "2000.00", quote.TotalRate)
		assert.Equal(t, "55.00", quote.MarginPercent)
	})

	t.Run("cost basis alone reprices against existing rates", func(t *testing.T) {
		quote := draftQuote()
		err := applyQuoteUpdate(quote, UpdateQuoteRequest{CostBasis: "1000.00"})
		require.NoError(t, err)

		assert.Equal(t, "1150.00", quote.TotalRate)
		assert.Equal(t, "13.04", quote.MarginPercent)
	})

	t.Run("invalid cost basis rejected", func(t *testing.T) {
		quote := draftQuote()
		err := applyQuoteUpdate(quote, UpdateQuoteRequest{CostBasis: "nine hundred"})
		assert.Error(t, err)
	})

	t.Run("pending quotes are still editable", func(t *testing.T) {
		quote := draftQuote()
		quote.Status = freight.QuoteStatusPending
		valid := "2024-03-20"
		require.NoError(t, applyQuoteUpdate(quote, UpdateQuoteRequest{ValidUntil: &valid}))
		assert.Equal(t, "2024-03-20", quote.ValidUntil)
	})

	t.Run("terminal quotes are frozen", func(t *testing.T) {
		for _, status := range []string{
			freight.QuoteStatusAccepted,
			freight.QuoteStatusExpired,
			freight.QuoteStatusDeclined,
		} {
			quote := draftQuote()
			quote.Status = status
			notes := "late edit"
			err := applyQuoteUpdate(quote, UpdateQuoteRequest{Notes: &notes})
			require.Error(t, err, status)
			assert.Contains(t, err.Error(), status)
		}
	})
}
