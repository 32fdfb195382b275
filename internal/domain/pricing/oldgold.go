package pricing

import (
	"heritage_gold/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// WeightClass is the light/medium/heavy style bucket.
type WeightClass string

const (
	WeightLight  WeightClass = "light"
	WeightMedium WeightClass = "medium"
	WeightHeavy  WeightClass = "heavy"
)

// WeightClasses lists the classes in display order.
var WeightClasses = []WeightClass{WeightLight, WeightMedium, WeightHeavy}

func (c WeightClass) Valid() bool {
	switch c {
	case WeightLight, WeightMedium, WeightHeavy:
		return true
	}
	return false
}

var (
	// MeltLoss is the processing loss deducted from old gold.
	MeltLoss = decimal.RequireFromString("0.05")

	// LabourFloor and LabourCeil bound the per-gram making charge assumed
	// when no specific design is chosen.
	LabourFloor = decimal.NewFromInt(500)
	LabourCeil  = decimal.NewFromInt(700)

	rateLow  = decimal.RequireFromString("0.9")
	rateHigh = decimal.RequireFromString("1.1")

	// coverage is the share of a tier's typical weight the old gold must
	// cover for the tier to count as possible. Heavier pieces tolerate more
	// added gold.
	coverage = map[WeightClass]decimal.Decimal{
		WeightLight:  decimal.RequireFromString("0.8"),
		WeightMedium: decimal.RequireFromString("0.6"),
		WeightHeavy:  decimal.RequireFromString("0.4"),
	}
)

// TierAssessment projects one weight class of the chosen jewellery type.
// The price band is the cost of the finished piece, not cost minus trade-in.
type TierAssessment struct {
	Class           WeightClass
	TypicalWeight   float64
	Possible        bool
	ExtraGoldNeeded float64
	EstimateMin     int64
	EstimateMax     int64
}

// Assessment is the advisory result of the old-gold exchange calculator.
type Assessment struct {
	OldWeight    float64
	Profile      JewelleryProfile
	RatePerGram  float64
	TradeInValue int64
	Tiers        []TierAssessment
}

// Tier returns the assessment for class c.
func (a Assessment) Tier(c WeightClass) (TierAssessment, bool) {
	for _, t := range a.Tiers {
		if t.Class == c {
			return t, true
		}
	}
	return TierAssessment{}, false
}

// Assess values old gold at the mid-tier rate, whatever its real purity, and
// projects the three tiers of profile. It reports false for a non-positive
// weight or a missing rate table.
func Assess(oldWeightGrams float64, profile JewelleryProfile, rates *entities.RateTable) (*Assessment, bool) {
	if rates == nil || oldWeightGrams <= 0 {
		return nil, false
	}

	rate := decimal.NewFromFloat(MidTierPurity.Rate(*rates))
	old := decimal.NewFromFloat(oldWeightGrams)

	a := &Assessment{
		OldWeight:    oldWeightGrams,
		Profile:      profile,
		RatePerGram:  rates.Gold22K,
		TradeInValue: roundUnits(old.Mul(rate).Mul(decimal.NewFromInt(1).Sub(MeltLoss))),
		Tiers:        make([]TierAssessment, 0, len(WeightClasses)),
	}
	for _, c := range WeightClasses {
		a.Tiers = append(a.Tiers, assessTier(c, profile.Typical.For(c), old, rate))
	}
	return a, true
}

func assessTier(c WeightClass, typicalWeight float64, old, rate decimal.Decimal) TierAssessment {
	typical := decimal.NewFromFloat(typicalWeight)
	extra := decimal.Max(decimal.Zero, typical.Sub(old))

	return TierAssessment{
		Class:           c,
		TypicalWeight:   typicalWeight,
		Possible:        old.GreaterThanOrEqual(typical.Mul(coverage[c])),
		ExtraGoldNeeded: extra.InexactFloat64(),
		EstimateMin:     roundUnits(typical.Mul(rate).Mul(rateLow).Add(typical.Mul(LabourFloor))),
		EstimateMax:     roundUnits(typical.Mul(rate).Mul(rateHigh).Add(typical.Mul(LabourCeil))),
	}
}
