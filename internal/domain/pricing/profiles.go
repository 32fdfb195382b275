package pricing

// TypicalWeights holds the usual gram weight of each style tier.
type TypicalWeights struct {
	Light  float64
	Medium float64
	Heavy  float64
}

func (t TypicalWeights) For(c WeightClass) float64 {
	switch c {
	case WeightLight:
		return t.Light
	case WeightMedium:
		return t.Medium
	default:
		return t.Heavy
	}
}

// JewelleryProfile describes a jewellery type for the old-gold calculator.
type JewelleryProfile struct {
	ID        string
	Label     string
	MinWeight float64
	Typical   TypicalWeights
}

var defaultProfiles = []JewelleryProfile{
	{ID: "necklace", Label: "Necklace", MinWeight: 15, Typical: TypicalWeights{Light: 20, Medium: 40, Heavy: 70}},
	{ID: "bangles", Label: "Bangles (pair)", MinWeight: 10, Typical: TypicalWeights{Light: 15, Medium: 25, Heavy: 40}},
	{ID: "chain", Label: "Chain", MinWeight: 8, Typical: TypicalWeights{Light: 12, Medium: 25, Heavy: 40}},
	{ID: "earrings", Label: "Earrings", MinWeight: 3, Typical: TypicalWeights{Light: 5, Medium: 10, Heavy: 15}},
	{ID: "ring", Label: "Ring", MinWeight: 2, Typical: TypicalWeights{Light: 4, Medium: 6, Heavy: 10}},
}

// Profiles returns a copy of the built-in jewellery-type profiles.
func Profiles() []JewelleryProfile {
	out := make([]JewelleryProfile, len(defaultProfiles))
	copy(out, defaultProfiles)
	return out
}

func LookupProfile(id string) (JewelleryProfile, bool) {
	for _, p := range defaultProfiles {
		if p.ID == id {
			return p, true
		}
	}
	return JewelleryProfile{}, false
}
