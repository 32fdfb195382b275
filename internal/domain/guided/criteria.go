// Package guided implements the "help me choose" flow: a five-step
// questionnaire whose answers narrow the catalogue to at most three pieces.
package guided

import (
	"errors"

	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/domain/pricing"
)

var (
	ErrInvalidOccasion  = errors.New("invalid occasion")
	ErrInvalidRecipient = errors.New("invalid recipient")
	ErrInvalidStyle     = errors.New("invalid style")
)

type Occasion string

const (
	OccasionWedding  Occasion = "wedding"
	OccasionDaily    Occasion = "daily"
	OccasionFestival Occasion = "festival"
	OccasionGift     Occasion = "gift"
)

func (o Occasion) Valid() bool {
	switch o {
	case OccasionWedding, OccasionDaily, OccasionFestival, OccasionGift:
		return true
	}
	return false
}

// Recipient is who the piece is for. It only matters through Gender.
type Recipient string

const (
	RecipientSelf     Recipient = "self"
	RecipientWife     Recipient = "wife"
	RecipientDaughter Recipient = "daughter"
	RecipientMother   Recipient = "mother"
)

const GenderFemale = "female"

func (r Recipient) Valid() bool {
	switch r {
	case RecipientSelf, RecipientWife, RecipientDaughter, RecipientMother:
		return true
	}
	return false
}

// Gender is the catalogue gender constraint for r; empty means none.
func (r Recipient) Gender() string {
	if r == RecipientSelf {
		return ""
	}
	return GenderFemale
}

// Budget is an inclusive currency range. Min > Max is accepted and simply
// matches nothing.
type Budget struct {
	Min int64
	Max int64
}

// DefaultBudget is the range a fresh session starts with.
var DefaultBudget = Budget{Min: 50000, Max: 200000}

func (b Budget) Contains(v int64) bool {
	return v >= b.Min && v <= b.Max
}

// Criteria is the user's answers for one guided session.
type Criteria struct {
	Occasion  Occasion
	Budget    Budget
	Recipient Recipient
	Style     pricing.WeightClass
}

// CatalogueFilter is the part of the criteria pushed down to the catalogue query.
func (c Criteria) CatalogueFilter() entities.ItemFilter {
	return entities.ItemFilter{
		Occasion: string(c.Occasion),
		Gender:   c.Recipient.Gender(),
	}
}

// Weight-class band limits in grams: light ≤ 15 < medium ≤ 35 < heavy.
const (
	LightMaxWeight  = 15.0
	MediumMaxWeight = 35.0
)

// ClassifyWeight buckets an average weight. Every value maps to exactly one class.
func ClassifyWeight(avgWeight float64) pricing.WeightClass {
	switch {
	case avgWeight <= LightMaxWeight:
		return pricing.WeightLight
	case avgWeight <= MediumMaxWeight:
		return pricing.WeightMedium
	default:
		return pricing.WeightHeavy
	}
}
