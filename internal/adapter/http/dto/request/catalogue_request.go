package request

import (
	"strings"

	"heritage_gold/internal/domain/entities"
)

// CatalogueQuery is bound from the query string of GET /jewellery.
type CatalogueQuery struct {
	Type      string  `form:"type"`
	Occasion  string  `form:"occasion"`
	Gender    string  `form:"gender"`
	Purity    string  `form:"purity"`
	Featured  *bool   `form:"featured"`
	MinWeight float64 `form:"min_weight" binding:"gte=0"`
	MaxWeight float64 `form:"max_weight" binding:"gte=0"`
}

func (q CatalogueQuery) ToFilter() entities.ItemFilter {
	return entities.ItemFilter{
		Type:      strings.TrimSpace(q.Type),
		Occasion:  strings.TrimSpace(q.Occasion),
		Gender:    strings.TrimSpace(q.Gender),
		Purity:    strings.TrimSpace(q.Purity),
		Featured:  q.Featured,
		MinWeight: q.MinWeight,
		MaxWeight: q.MaxWeight,
	}
}

type CreateItemRequest struct {
	ItemID            string   `json:"item_id"`
	Name              string   `json:"name" binding:"required"`
	Description       string   `json:"description"`
	Type              string   `json:"type" binding:"required"`
	Occasion          string   `json:"occasion"`
	Gender            string   `json:"gender"`
	Purity            string   `json:"purity"`
	WeightMin         float64  `json:"weight_min" binding:"required"`
	WeightMax         float64  `json:"weight_max" binding:"required"`
	LabourCostPerGram float64  `json:"labour_cost_per_gram"`
	MakingComplexity  string   `json:"making_complexity"`
	Images            []string `json:"images"`
	IsFeatured        bool     `json:"is_featured"`
}

func (r CreateItemRequest) ToEntity() entities.Item {
	return entities.Item{
		ItemID:            r.ItemID,
		Name:              r.Name,
		Description:       r.Description,
		Type:              r.Type,
		Occasion:          r.Occasion,
		Gender:            r.Gender,
		Purity:            r.Purity,
		WeightMin:         r.WeightMin,
		WeightMax:         r.WeightMax,
		LabourCostPerGram: r.LabourCostPerGram,
		MakingComplexity:  r.MakingComplexity,
		Images:            r.Images,
		IsFeatured:        r.IsFeatured,
	}
}
