package response

import (
	"time"

	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/domain/pricing"
)

type RateTableResponse struct {
	Gold24K   float64   `json:"gold_24k"`
	Gold22K   float64   `json:"gold_22k"`
	Gold18K   float64   `json:"gold_18k"`
	Silver    float64   `json:"silver"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

func FromRateTable(r *entities.RateTable) *RateTableResponse {
	if r == nil {
		return nil
	}
	return &RateTableResponse{
		Gold24K:   r.Gold24K,
		Gold22K:   r.Gold22K,
		Gold18K:   r.Gold18K,
		Silver:    r.Silver,
		Timestamp: r.Timestamp,
		Source:    string(r.Source),
	}
}

type BreakdownBody struct {
	GoldRatePerGram float64 `json:"gold_rate_per_gram"`
	Weight          float64 `json:"weight"`
	Purity          string  `json:"purity"`
	GoldValue       float64 `json:"gold_value"`
	LabourPerGram   float64 `json:"labour_per_gram"`
	LabourCost      float64 `json:"labour_cost"`
	Subtotal        float64 `json:"subtotal"`
	GSTRate         string  `json:"gst_rate"`
	GSTAmount       float64 `json:"gst_amount"`
	Total           float64 `json:"total"`
}

type MoneyRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type CalculateResponse struct {
	Breakdown     BreakdownBody      `json:"breakdown"`
	EstimateRange MoneyRange         `json:"estimate_range"`
	Rates         *RateTableResponse `json:"rates"`
}

func FromBreakdown(b pricing.Breakdown, rates *entities.RateTable) CalculateResponse {
	return CalculateResponse{
		Breakdown: BreakdownBody{
			GoldRatePerGram: b.GoldRatePerGram,
			Weight:          b.Weight,
			Purity:          b.Purity,
			GoldValue:       b.GoldValue,
			LabourPerGram:   b.LabourPerGram,
			LabourCost:      b.LabourCost,
			Subtotal:        b.Subtotal,
			GSTRate:         b.TaxRateLabel,
			GSTAmount:       b.TaxAmount,
			Total:           b.Total,
		},
		EstimateRange: MoneyRange{Min: b.EstimateMin, Max: b.EstimateMax},
		Rates:         FromRateTable(rates),
	}
}

type ProfileResponse struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	MinWeight     float64 `json:"min_weight"`
	TypicalLight  float64 `json:"typical_light"`
	TypicalMedium float64 `json:"typical_medium"`
	TypicalHeavy  float64 `json:"typical_heavy"`
}

func FromProfiles(ps []pricing.JewelleryProfile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, ProfileResponse{
			ID:            p.ID,
			Label:         p.Label,
			MinWeight:     p.MinWeight,
			TypicalLight:  p.Typical.Light,
			TypicalMedium: p.Typical.Medium,
			TypicalHeavy:  p.Typical.Heavy,
		})
	}
	return out
}

type TierResponse struct {
	Class           string  `json:"class"`
	TypicalWeight   float64 `json:"typical_weight"`
	Possible        bool    `json:"possible"`
	ExtraGoldNeeded float64 `json:"extra_gold_needed"`
	EstimateMin     int64   `json:"estimate_min"`
	EstimateMax     int64   `json:"estimate_max"`
}

type AssessmentResponse struct {
	OldWeight    float64         `json:"old_weight"`
	Profile      ProfileResponse `json:"profile"`
	RatePerGram  float64         `json:"rate_per_gram"`
	TradeInValue int64           `json:"trade_in_value"`
	Tiers        []TierResponse  `json:"tiers"`
}

func FromAssessment(a *pricing.Assessment) AssessmentResponse {
	tiers := make([]TierResponse, 0, len(a.Tiers))
	for _, t := range a.Tiers {
		tiers = append(tiers, TierResponse{
			Class:           string(t.Class),
			TypicalWeight:   t.TypicalWeight,
			Possible:        t.Possible,
			ExtraGoldNeeded: t.ExtraGoldNeeded,
			EstimateMin:     t.EstimateMin,
			EstimateMax:     t.EstimateMax,
		})
	}
	return AssessmentResponse{
		OldWeight:    a.OldWeight,
		Profile:      FromProfiles([]pricing.JewelleryProfile{a.Profile})[0],
		RatePerGram:  a.RatePerGram,
		TradeInValue: a.TradeInValue,
		Tiers:        tiers,
	}
}
