package freight

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/internal/database/models"
)

func TestTotalRate(t *testing.T) {
	t.Run("base plus fuel surcharge", func(t *testing.T) {
		total := TotalRate(models.RateBreakdown{
			BaseRate:      "1000",
			FuelSurcharge: "150",
		})
		assert.Equal(t, "1150.00", total.StringFixed(2))
	})

	t.Run("all components and additional charges", func(t *testing.T) {
		total := TotalRate(models.RateBreakdown{
			BaseRate:       "500.50",
			FuelSurcharge:  "75.25",
			ChassisFee:     "45",
			PortCongestion: "100",
			Tolls:          "12.75",
			AdditionalCharges: []models.RateComponent{
				{Description: "detention", Quantity: 2, UnitPrice: "65", Total: "130"},
			},
		})
		assert.Equal(t, "863.50", total.StringFixed(2))
	})

	t.Run("empty breakdown is zero", func(t *testing.T) {
		assert.True(t, TotalRate(models.RateBreakdown{}).IsZero())
	})

	t.Run("malformed component treated as zero", func(t *testing.T) {
		total := TotalRate(models.RateBreakdown{BaseRate: "1000", FuelSurcharge: "not-a-number"})
		assert.Equal(t, "1000.00", total.StringFixed(2))
	})
}

func TestMarginPercent(t *testing.T) {
	t.Run("standard margin", func(t *testing.T) {
		total := decimal.NewFromInt(1150)
		cost := decimal.NewFromInt(900)
		assert.Equal(t, "21.74", MarginPercent(total, cost).StringFixed(2))
	})

	t.Run("zero total yields zero margin", func(t *testing.T) {
		assert.True(t, MarginPercent(decimal.Zero, decimal.NewFromInt(900)).IsZero())
	})

	t.Run("negative margin when cost exceeds rate", func(t *testing.T) {
		total := decimal.NewFromInt(800)
		cost := decimal.NewFromInt(1000)
		assert.Equal(t, "-25.00", MarginPercent(total, cost).StringFixed(2))
	})
}

func TestCostFromMargin(t *testing.T) {
	t.Run("recovers the cost basis", func(t *testing.T) {
		total := decimal.RequireFromString("1150.00")
		margin := decimal.RequireFromString("21.74")
		assert.Equal(t, "899.99", CostFromMargin(total, margin).StringFixed(2))
	})

	t.Run("zero margin means cost equals total", func(t *testing.T) {
		total := decimal.RequireFromString("1000.00")
		assert.Equal(t, "1000.00", CostFromMargin(total, decimal.Zero).StringFixed(2))
	})

	t.Run("zero total", func(t *testing.T) {
		assert.True(t, CostFromMargin(decimal.Zero, decimal.RequireFromString("20")).IsZero())
	})
}

func TestGrossProfit(t *testing.T) {
	revenue := decimal.RequireFromString("2500.00")
	cost := decimal.RequireFromString("1850.50")
	assert.Equal(t, "649.50", GrossProfit(revenue, cost).StringFixed(2))
}

func TestAccessorialTotal(t *testing.T) {
	charges := []models.AccessorialCharge{
		{Code: "DET", Name: "Detention", Amount: "130", Billable: true},
		{Code: "STO", Name: "Storage", Amount: "200", Billable: false},
		{Code: "CHS", Name: "Chassis Split", Amount: "85.50", Billable: true},
	}
	assert.Equal(t, "215.50", AccessorialTotal(charges).StringFixed(2))
}

func TestDispatchTotals(t *testing.T) {
	charges := []models.AccessorialCharge{
		{Code: "DET", Name: "Detention", Amount: "100", Billable: true},
	}
	cost, revenue, profit := DispatchTotals("900", "1150", charges)

	require.Equal(t, "1000.00", cost.StringFixed(2))
	require.Equal(t, "1250.00", revenue.StringFixed(2))
	assert.Equal(t, "250.00", profit.StringFixed(2))

	// The invariant: profit always equals revenue minus cost.
	assert.True(t, profit.Equal(revenue.Sub(cost)))
}
