package request

import (
	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/usecase"
)

// RateUpdateRequest is the manual rate override payload.
type RateUpdateRequest struct {
	Gold24K float64 `json:"gold_24k" binding:"gte=0"`
	Gold22K float64 `json:"gold_22k" binding:"gte=0"`
	Gold18K float64 `json:"gold_18k" binding:"gte=0"`
	Silver  float64 `json:"silver" binding:"gte=0"`
}

func (r RateUpdateRequest) ToEntity() entities.RateTable {
	return entities.RateTable{Gold24K: r.Gold24K, Gold22K: r.Gold22K, Gold18K: r.Gold18K, Silver: r.Silver}
}

// CalculateQuery is bound from the query string of /calculate-price.
type CalculateQuery struct {
	Weight        float64  `form:"weight" binding:"required"`
	Purity        string   `form:"purity"`
	LabourPerGram *float64 `form:"labour_per_gram"`
	IncludeGST    *bool    `form:"include_gst"`
}

// ToInput maps the query to the use case input. GST is included unless
// include_gst=false is sent.
func (q CalculateQuery) ToInput() usecase.CalculateInput {
	includeTax := true
	if q.IncludeGST != nil {
		includeTax = *q.IncludeGST
	}
	return usecase.CalculateInput{
		Weight:        q.Weight,
		Purity:        q.Purity,
		LabourPerGram: q.LabourPerGram,
		IncludeTax:    includeTax,
	}
}

type OldGoldRequest struct {
	OldWeight float64 `json:"old_weight" binding:"required"`
	ProfileID string  `json:"profile_id" binding:"required"`
}
