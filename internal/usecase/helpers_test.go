package usecase

import (
	"context"

	"heritage_gold/internal/domain/entities"
)

// staticRates is a fixed IRateProvider for usecase tests.
type staticRates struct {
	table    *entities.RateTable
	policies []RatePolicy
}

func newStaticRates() *staticRates {
	return &staticRates{table: &entities.RateTable{Gold24K: 6500, Gold22K: 6000, Gold18K: 4900, Silver: 80, Source: entities.RateSourceLive}}
}

func (s *staticRates) Current(_ context.Context, policy RatePolicy) *entities.RateTable {
	s.policies = append(s.policies, policy)
	c := *s.table
	return &c
}

func (s *staticRates) Snapshot() *entities.RateTable { return s.table }

func (s *staticRates) Override(_ context.Context, table entities.RateTable) (entities.RateTable, error) {
	table.Source = entities.RateSourceManual
	s.table = &table
	return table, nil
}

func testItem(id string, wmin, wmax, labour float64) entities.Item {
	return entities.Item{
		ItemID: id, Name: "Item " + id, Type: "necklace", Occasion: "wedding", Gender: "female",
		Purity: "22K", WeightMin: wmin, WeightMax: wmax, LabourCostPerGram: labour,
	}
}
