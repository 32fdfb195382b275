package usecase

import (
	"context"
	"errors"
	"testing"

	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/domain/pricing"
)

func TestPricingUseCase_Rates(t *testing.T) {
	rates := newStaticRates()
	uc := NewPricingUseCase(rates)

	uc.Rates(context.Background(), false)
	uc.Rates(context.Background(), true)
	if len(rates.policies) != 2 || rates.policies[0] != LastKnownGood || rates.policies[1] != FetchNow {
		t.Fatalf("unexpected policies: %v", rates.policies)
	}

	got, err := uc.UpdateRates(context.Background(), entities.RateTable{Gold22K: 7000})
	if err != nil || got.Source != entities.RateSourceManual {
		t.Fatalf("unexpected override: %+v err=%v", got, err)
	}
}

func TestPricingUseCase_Calculate(t *testing.T) {
	uc := NewPricingUseCase(newStaticRates())

	t.Run("invalid weight", func(t *testing.T) {
		_, _, err := uc.Calculate(context.Background(), CalculateInput{Weight: 0})
		if !errors.Is(err, ErrInvalidWeight) {
			t.Fatalf("expected ErrInvalidWeight, got %v", err)
		}
	})

	t.Run("negative labour", func(t *testing.T) {
		labour := -1.0
		_, _, err := uc.Calculate(context.Background(), CalculateInput{Weight: 10, LabourPerGram: &labour})
		if !errors.Is(err, ErrInvalidLabour) {
			t.Fatalf("expected ErrInvalidLabour, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		b, rates, err := uc.Calculate(context.Background(), CalculateInput{Weight: 10, IncludeTax: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rates == nil {
			t.Fatalf("expected rates")
		}
		// 10g * (6000 + 500) = 65000 ; +3% = 66950
		if b.Purity != "22K" || b.LabourPerGram != pricing.DefaultLabourPerGram || b.Total != 66950 || b.TaxRateLabel != "3%" {
			t.Fatalf("unexpected breakdown: %+v", b)
		}
	})

	t.Run("explicit labour without tax", func(t *testing.T) {
		labour := 0.0
		b, _, err := uc.Calculate(context.Background(), CalculateInput{Weight: 10, Purity: "24K", LabourPerGram: &labour})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Total != 65000 || b.TaxAmount != 0 {
			t.Fatalf("unexpected breakdown: %+v", b)
		}
	})
}

func TestPricingUseCase_AssessOldGold(t *testing.T) {
	uc := NewPricingUseCase(newStaticRates())

	if _, err := uc.AssessOldGold(context.Background(), 0, "bangles"); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
	if _, err := uc.AssessOldGold(context.Background(), 10, "anklet"); !errors.Is(err, ErrUnknownProfile) {
		t.Fatalf("expected ErrUnknownProfile, got %v", err)
	}

	a, err := uc.AssessOldGold(context.Background(), 10, "bangles")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.TradeInValue != 57000 || len(a.Tiers) != 3 {
		t.Fatalf("unexpected assessment: %+v", a)
	}

	if len(uc.Profiles()) != 5 {
		t.Fatalf("expected 5 profiles")
	}
}
