package guided

import (
	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/domain/pricing"
)

// MaxResults caps how many matches the flow shows.
const MaxResults = 3

// Match is a surviving item with the estimate used to admit it.
type Match struct {
	Item     entities.Item
	Estimate int64
}

// Filter applies the budget and weight-class predicates to items already
// narrowed by occasion and gender, keeping catalogue order, and truncates to
// MaxResults.
func Filter(items []entities.Item, c Criteria, rates *entities.RateTable) []Match {
	out := make([]Match, 0, MaxResults)
	for _, it := range items {
		if len(out) == MaxResults {
			break
		}
		estimate := pricing.EstimateItem(it, rates)
		if !c.Budget.Contains(estimate) {
			continue
		}
		if ClassifyWeight(it.AvgWeight()) != c.Style {
			continue
		}
		out = append(out, Match{Item: it, Estimate: estimate})
	}
	return out
}
