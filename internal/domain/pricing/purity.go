package pricing

import "heritage_gold/internal/domain/entities"

// Purity is the karat grade of a piece. Only the three grades the shop
// quotes are recognised; every other label resolves to MidTierPurity.
type Purity string

const (
	Purity24K Purity = "24K"
	Purity22K Purity = "22K"
	Purity18K Purity = "18K"

	// MidTierPurity is the default grade for unknown labels and the
	// valuation grade for old gold.
	MidTierPurity = Purity22K
)

func ParsePurity(label string) (Purity, bool) {
	switch Purity(label) {
	case Purity24K, Purity22K, Purity18K:
		return Purity(label), true
	}
	return "", false
}

// ResolvePurity maps a catalogue label onto a known grade. The second return
// value reports whether the mid-tier fallback was applied.
func ResolvePurity(label string) (Purity, bool) {
	if p, ok := ParsePurity(label); ok {
		return p, false
	}
	return MidTierPurity, true
}

// Rate returns the per-gram rate of p in the table.
func (p Purity) Rate(rates entities.RateTable) float64 {
	switch p {
	case Purity24K:
		return rates.Gold24K
	case Purity18K:
		return rates.Gold18K
	default:
		return rates.Gold22K
	}
}

// ResolveRate resolves label with the mid-tier fallback and reads its rate.
// A nil table yields 0.
func ResolveRate(label string, rates *entities.RateTable) float64 {
	if rates == nil {
		return 0
	}
	p, _ := ResolvePurity(label)
	return p.Rate(*rates)
}
