package entities

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidItem = errors.New("invalid jewellery item")

// Item is a catalogue entry (jewellery piece).
//
// Storage model (DynamoDB):
//   - PK: item_id
//
// Weights are grams. LabourCostPerGram is the making charge per gram.
type Item struct {
	ItemID            string    `json:"item_id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Type              string    `json:"type"`
	Occasion          string    `json:"occasion"`
	Gender            string    `json:"gender"`
	Purity            string    `json:"purity"`
	WeightMin         float64   `json:"weight_min"`
	WeightMax         float64   `json:"weight_max"`
	LabourCostPerGram float64   `json:"labour_cost_per_gram"`
	MakingComplexity  string    `json:"making_complexity"`
	Images            []string  `json:"images"`
	IsFeatured        bool      `json:"is_featured"`
	CreatedAt         time.Time `json:"created_at"`
}

// AvgWeight is the representative weight used for single-figure estimates.
func (i Item) AvgWeight() float64 {
	return (i.WeightMin + i.WeightMax) / 2
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" || strings.TrimSpace(i.Type) == "" {
		return ErrInvalidItem
	}
	if i.WeightMin <= 0 || i.WeightMax < i.WeightMin {
		return ErrInvalidItem
	}
	if i.LabourCostPerGram < 0 {
		return ErrInvalidItem
	}
	return nil
}

// ItemFilter narrows a catalogue query. Zero values mean "no constraint".
type ItemFilter struct {
	Type      string
	Occasion  string
	Gender    string
	Purity    string
	Featured  *bool
	MinWeight float64
	MaxWeight float64
}

// Matches applies the filter to a single item: MinWeight keeps items that can
// weigh at least that much, MaxWeight keeps items that can weigh at most that much.
func (f ItemFilter) Matches(i Item) bool {
	if f.Type != "" && i.Type != f.Type {
		return false
	}
	if f.Occasion != "" && i.Occasion != f.Occasion {
		return false
	}
	if f.Gender != "" && i.Gender != f.Gender {
		return false
	}
	if f.Purity != "" && i.Purity != f.Purity {
		return false
	}
	if f.Featured != nil && i.IsFeatured != *f.Featured {
		return false
	}
	if f.MinWeight > 0 && i.WeightMax < f.MinWeight {
		return false
	}
	if f.MaxWeight > 0 && i.WeightMin > f.MaxWeight {
		return false
	}
	return true
}
