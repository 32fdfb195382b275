package entities

import (
	"errors"
	"testing"
	"time"
)

func TestItem_Validate(t *testing.T) {
	ok := Item{Name: "Band", Type: "ring", WeightMin: 4, WeightMax: 6, LabourCostPerGram: 600}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []Item{
		{Name: " ", Type: "ring", WeightMin: 4, WeightMax: 6},
		{Name: "Band", Type: "", WeightMin: 4, WeightMax: 6},
		{Name: "Band", Type: "ring", WeightMin: 0, WeightMax: 6},
		{Name: "Band", Type: "ring", WeightMin: 7, WeightMax: 6},
		{Name: "Band", Type: "ring", WeightMin: 4, WeightMax: 6, LabourCostPerGram: -1},
	}
	for _, it := range cases {
		if err := it.Validate(); !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem for %+v, got %v", it, err)
		}
	}
}

func TestItem_AvgWeight(t *testing.T) {
	if got := (Item{WeightMin: 15, WeightMax: 20}).AvgWeight(); got != 17.5 {
		t.Fatalf("expected 17.5, got %v", got)
	}
}

func TestItemFilter_Matches(t *testing.T) {
	yes := true
	it := Item{Type: "necklace", Occasion: "wedding", Gender: "female", Purity: "22K", WeightMin: 40, WeightMax: 50, IsFeatured: true}

	cases := []struct {
		name string
		f    ItemFilter
		want bool
	}{
		{"empty", ItemFilter{}, true},
		{"type", ItemFilter{Type: "ring"}, false},
		{"occasion and gender", ItemFilter{Occasion: "wedding", Gender: "female"}, true},
		{"purity mismatch", ItemFilter{Purity: "18K"}, false},
		{"featured", ItemFilter{Featured: &yes}, true},
		{"min weight reachable", ItemFilter{MinWeight: 45}, true},
		{"min weight too high", ItemFilter{MinWeight: 55}, false},
		{"max weight too low", ItemFilter{MaxWeight: 30}, false},
		{"max weight reachable", ItemFilter{MaxWeight: 40}, true},
	}
	for _, tc := range cases {
		if got := tc.f.Matches(it); got != tc.want {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.want, got)
		}
	}
}

func TestRateTable_ValidateAndAge(t *testing.T) {
	if err := (RateTable{Gold22K: -1}).Validate(); !errors.Is(err, ErrInvalidRateTable) {
		t.Fatalf("expected ErrInvalidRateTable, got %v", err)
	}
	now := time.Now()
	rt := RateTable{Gold22K: 6000, Timestamp: now.Add(-time.Minute)}
	if err := rt.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if age := rt.Age(now); age != time.Minute {
		t.Fatalf("expected 1m, got %s", age)
	}
	if age := (RateTable{}).Age(now); age < 100*365*24*time.Hour {
		t.Fatalf("zero timestamp should be very old, got %s", age)
	}
}
