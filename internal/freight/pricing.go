package freight

import (
	"github.com/shopspring/decimal"

	"freightflow/internal/database/models"
)

// Money travels as decimal(18,2) strings; all arithmetic goes through
// shopspring decimals so nothing is lost to float rounding.

func parseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// TotalRate sums every component of a rate breakdown.
func TotalRate(rates models.RateBreakdown) decimal.Decimal {
	total := parseAmount(rates.BaseRate).
		Add(parseAmount(rates.FuelSurcharge)).
		Add(parseAmount(rates.ChassisFee)).
		Add(parseAmount(rates.PortCongestion)).
		Add(parseAmount(rates.Tolls))

	for _, charge := range rates.AdditionalCharges {
		total = total.Add(parseAmount(charge.Total))
	}
	return total
}

// MarginPercent is (total - cost) / total * 100, fixed to two places. A zero
// total yields a zero margin rather than a division error.
func MarginPercent(totalRate, cost decimal.Decimal) decimal.Decimal {
	if totalRate.IsZero() {
		return decimal.Zero
	}
	return totalRate.Sub(cost).
		Div(totalRate).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// CostFromMargin recovers the cost basis implied by a stored total and
// margin: cost = total * (100 - margin) / 100. Used when a quote is repriced
// without a fresh cost basis.
func CostFromMargin(totalRate, marginPercent decimal.Decimal) decimal.Decimal {
	return totalRate.
		Mul(decimal.NewFromInt(100).Sub(marginPercent)).
		Div(decimal.NewFromInt(100)).
		Round(2)
}

// GrossProfit is revenue minus cost. Every persisted dispatch must carry a
// grossProfit equal to this for its stored revenue and cost.
func GrossProfit(totalRevenue, totalCost decimal.Decimal) decimal.Decimal {
	return totalRevenue.Sub(totalCost)
}

// AccessorialTotal sums billable accessorial charges on a dispatch.
func AccessorialTotal(charges []models.AccessorialCharge) decimal.Decimal {
	total := decimal.Zero
	for _, charge := range charges {
		if charge.Billable {
			total = total.Add(parseAmount(charge.Amount))
		}
	}
	return total
}

// DispatchTotals derives cost, revenue and gross profit from the carrier
// rate, customer rate and accessorials. Billable accessorials are passed
// through to the customer, so they raise cost and revenue equally.
func DispatchTotals(carrierRate, customerRate string, accessorials []models.AccessorialCharge) (cost, revenue, profit decimal.Decimal) {
	accTotal := AccessorialTotal(accessorials)
	cost = parseAmount(carrierRate).Add(accTotal)
	revenue = parseAmount(customerRate).Add(accTotal)
	profit = GrossProfit(revenue, cost)
	return cost, revenue, profit
}
