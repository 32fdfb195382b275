package usecase

import (
	"context"
	"errors"
	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/domain/pricing"
	"strings"
)

var (
	ErrInvalidWeight    = errors.New("invalid weight")
	ErrInvalidLabour    = errors.New("invalid labour charge")
	ErrUnknownProfile   = errors.New("unknown jewellery profile")
	ErrRatesUnavailable = errors.New("rates unavailable")
)

// CalculateInput carries the calculator form. A nil LabourPerGram means
// the default making charge.
type CalculateInput struct {
	Weight        float64
	Purity        string
	LabourPerGram *float64
	IncludeTax    bool
}

// IPricingUseCase covers the rate table, the price calculator and the
// old-gold exchange estimate.
type IPricingUseCase interface {
	Rates(ctx context.Context, refresh bool) *entities.RateTable
	UpdateRates(ctx context.Context, table entities.RateTable) (entities.RateTable, error)
	Calculate(ctx context.Context, in CalculateInput) (pricing.Breakdown, *entities.RateTable, error)
	Profiles() []pricing.JewelleryProfile
	AssessOldGold(ctx context.Context, oldWeight float64, profileID string) (*pricing.Assessment, error)
}

type PricingUseCase struct {
	rates IRateProvider
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(rates IRateProvider) *PricingUseCase {
	return &PricingUseCase{rates: rates}
}

func (u *PricingUseCase) Rates(ctx context.Context, refresh bool) *entities.RateTable {
	if refresh {
		return u.rates.Current(ctx, FetchNow)
	}
	return u.rates.Current(ctx, LastKnownGood)
}

func (u *PricingUseCase) UpdateRates(ctx context.Context, table entities.RateTable) (entities.RateTable, error) {
	return u.rates.Override(ctx, table)
}

func (u *PricingUseCase) Calculate(ctx context.Context, in CalculateInput) (pricing.Breakdown, *entities.RateTable, error) {
	if in.Weight <= 0 {
		return pricing.Breakdown{}, nil, ErrInvalidWeight
	}
	labour := pricing.DefaultLabourPerGram
	if in.LabourPerGram != nil {
		if *in.LabourPerGram < 0 {
			return pricing.Breakdown{}, nil, ErrInvalidLabour
		}
		labour = *in.LabourPerGram
	}
	purity := strings.TrimSpace(in.Purity)
	if purity == "" {
		purity = string(pricing.MidTierPurity)
	}

	rates := u.rates.Current(ctx, LastKnownGood)
	return pricing.Calculate(purity, in.Weight, labour, in.IncludeTax, rates), rates, nil
}

func (u *PricingUseCase) Profiles() []pricing.JewelleryProfile {
	return pricing.Profiles()
}

func (u *PricingUseCase) AssessOldGold(ctx context.Context, oldWeight float64, profileID string) (*pricing.Assessment, error) {
	if oldWeight <= 0 {
		return nil, ErrInvalidWeight
	}
	profile, ok := pricing.LookupProfile(strings.TrimSpace(profileID))
	if !ok {
		return nil, ErrUnknownProfile
	}

	a, ok := pricing.Assess(oldWeight, profile, u.rates.Current(ctx, LastKnownGood))
	if !ok {
		return nil, ErrRatesUnavailable
	}
	return a, nil
}
