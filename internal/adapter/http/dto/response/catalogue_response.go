package response

import (
	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/domain/guided"
	"heritage_gold/internal/usecase"
)

type ItemResponse struct {
	entities.Item
	Estimate    int64 `json:"estimate"`
	EstimateMin int64 `json:"estimate_min"`
	EstimateMax int64 `json:"estimate_max"`
}

func FromPricedItem(p usecase.PricedItem) ItemResponse {
	return ItemResponse{Item: p.Item, Estimate: p.Estimate, EstimateMin: p.Range.Min, EstimateMax: p.Range.Max}
}

type CatalogueResponse struct {
	Items []ItemResponse     `json:"items"`
	Count int                `json:"count"`
	Rates *RateTableResponse `json:"rates"`
}

func FromCatalogue(items []usecase.PricedItem, rates *entities.RateTable) CatalogueResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromPricedItem(it))
	}
	return CatalogueResponse{Items: out, Count: len(out), Rates: FromRateTable(rates)}
}

type ItemDetailResponse struct {
	Item  ItemResponse       `json:"item"`
	Rates *RateTableResponse `json:"rates"`
}

type CreatedItemResponse struct {
	Status string `json:"status"`
	ItemID string `json:"item_id"`
}

type MatchResponse struct {
	entities.Item
	Estimate int64 `json:"estimate"`
}

type GuidedResponse struct {
	Occasion  string             `json:"occasion"`
	BudgetMin int64              `json:"budget_min"`
	BudgetMax int64              `json:"budget_max"`
	Recipient string             `json:"recipient"`
	Style     string             `json:"style"`
	Matches   []MatchResponse    `json:"matches"`
	Empty     bool               `json:"empty"`
	Rates     *RateTableResponse `json:"rates"`
}

func FromGuidedResult(r usecase.GuidedResult) GuidedResponse {
	matches := make([]MatchResponse, 0, len(r.Matches))
	for _, m := range r.Matches {
		matches = append(matches, fromMatch(m))
	}
	return GuidedResponse{
		Occasion:  string(r.Criteria.Occasion),
		BudgetMin: r.Criteria.Budget.Min,
		BudgetMax: r.Criteria.Budget.Max,
		Recipient: string(r.Criteria.Recipient),
		Style:     string(r.Criteria.Style),
		Matches:   matches,
		Empty:     r.Empty(),
		Rates:     FromRateTable(r.Rates),
	}
}

func fromMatch(m guided.Match) MatchResponse {
	return MatchResponse{Item: m.Item, Estimate: m.Estimate}
}
