// Package pricing turns metal rates, weights and making charges into the
// customer-facing estimates shown across the site.
//
// All arithmetic runs on shopspring/decimal. Integer estimates are rounded
// half away from zero, which for the non-negative amounts handled here is the
// same as round-half-up.
package pricing

import (
	"heritage_gold/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	// TaxRate is the GST applied to metal value plus making charges.
	TaxRate = decimal.RequireFromString("0.03")

	half = decimal.RequireFromString("0.5")
)

// PriceRange is the estimate at an item's lightest and heaviest weight.
type PriceRange struct {
	Min int64
	Max int64
}

// Mid is the rounded midpoint of the range.
func (r PriceRange) Mid() int64 {
	return decimal.NewFromInt(r.Min).Add(decimal.NewFromInt(r.Max)).Mul(half).Round(0).IntPart()
}

// Estimate prices a piece of the given purity and weight. A nil table or a
// non-positive weight yields 0; a negative labour rate is treated as 0.
func Estimate(purity string, weightGrams, labourPerGram float64, rates *entities.RateTable) int64 {
	if rates == nil || weightGrams <= 0 {
		return 0
	}
	return roundUnits(total(ResolveRate(purity, rates), weightGrams, labourPerGram, true))
}

// EstimateItem prices an item at its average weight.
func EstimateItem(item entities.Item, rates *entities.RateTable) int64 {
	return Estimate(item.Purity, item.AvgWeight(), item.LabourCostPerGram, rates)
}

// EstimateRange prices an item at both ends of its weight range.
func EstimateRange(item entities.Item, rates *entities.RateTable) PriceRange {
	return PriceRange{
		Min: Estimate(item.Purity, item.WeightMin, item.LabourCostPerGram, rates),
		Max: Estimate(item.Purity, item.WeightMax, item.LabourCostPerGram, rates),
	}
}

func total(rate, weightGrams, labourPerGram float64, withTax bool) decimal.Decimal {
	sub := subtotal(rate, weightGrams, labourPerGram)
	if !withTax {
		return sub
	}
	return sub.Add(sub.Mul(TaxRate))
}

func subtotal(rate, weightGrams, labourPerGram float64) decimal.Decimal {
	w := decimal.NewFromFloat(weightGrams)
	gold := decimal.NewFromFloat(rate).Mul(w)
	return gold.Add(labourValue(labourPerGram, w))
}

func labourValue(labourPerGram float64, w decimal.Decimal) decimal.Decimal {
	if labourPerGram < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(labourPerGram).Mul(w)
}

func roundUnits(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
