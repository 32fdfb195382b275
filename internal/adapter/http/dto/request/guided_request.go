package request

import (
	"heritage_gold/internal/domain/guided"
	"heritage_gold/internal/domain/pricing"
)

// GuidedRequest carries the answers of a completed guided session. Budget
// bounds default to the session defaults when omitted.
type GuidedRequest struct {
	Occasion  string `json:"occasion" binding:"required"`
	BudgetMin *int64 `json:"budget_min"`
	BudgetMax *int64 `json:"budget_max"`
	Recipient string `json:"recipient" binding:"required"`
	Style     string `json:"style" binding:"required"`
}

func (r GuidedRequest) ToCriteria() guided.Criteria {
	b := guided.DefaultBudget
	if r.BudgetMin != nil {
		b.Min = *r.BudgetMin
	}
	if r.BudgetMax != nil {
		b.Max = *r.BudgetMax
	}
	return guided.Criteria{
		Occasion:  guided.Occasion(r.Occasion),
		Budget:    b,
		Recipient: guided.Recipient(r.Recipient),
		Style:     pricing.WeightClass(r.Style),
	}
}
