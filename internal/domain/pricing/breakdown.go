package pricing

import (
	"heritage_gold/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultLabourPerGram is used by the calculator when no making charge is given.
const DefaultLabourPerGram = 500.0

var (
	rangeLow  = decimal.RequireFromString("0.95")
	rangeHigh = decimal.RequireFromString("1.05")
)

// Breakdown is the itemised calculator result. Money fields are rounded to
// two decimals; EstimateMin/EstimateMax give a ±5% advisory band on Total.
type Breakdown struct {
	Purity          string
	Weight          float64
	GoldRatePerGram float64
	GoldValue       float64
	LabourPerGram   float64
	LabourCost      float64
	Subtotal        float64
	TaxRateLabel    string
	TaxAmount       float64
	Total           float64
	EstimateMin     float64
	EstimateMax     float64
}

// Calculate produces the itemised breakdown. With a nil table every money
// field is zero.
func Calculate(purity string, weightGrams, labourPerGram float64, includeTax bool, rates *entities.RateTable) Breakdown {
	b := Breakdown{
		Purity:        purity,
		Weight:        weightGrams,
		LabourPerGram: labourPerGram,
		TaxRateLabel:  "0%",
	}
	if includeTax {
		b.TaxRateLabel = "3%"
	}
	if rates == nil || weightGrams <= 0 {
		return b
	}

	rate := decimal.NewFromFloat(ResolveRate(purity, rates))
	w := decimal.NewFromFloat(weightGrams)
	gold := rate.Mul(w)
	labour := labourValue(labourPerGram, w)
	sub := gold.Add(labour)
	tax := decimal.Zero
	if includeTax {
		tax = sub.Mul(TaxRate)
	}
	tot := sub.Add(tax)

	b.GoldRatePerGram = money(rate)
	b.GoldValue = money(gold)
	b.LabourCost = money(labour)
	b.Subtotal = money(sub)
	b.TaxAmount = money(tax)
	b.Total = money(tot)
	b.EstimateMin = money(tot.Mul(rangeLow))
	b.EstimateMax = money(tot.Mul(rangeHigh))
	return b
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
