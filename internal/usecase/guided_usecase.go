package usecase

import (
	"context"
	"errors"
	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/domain/guided"
	"heritage_gold/internal/logging"
	"heritage_gold/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrInvalidBudget = errors.New("invalid budget")

// GuidedResult is the outcome of a completed guided session.
type GuidedResult struct {
	Criteria guided.Criteria
	Matches  []guided.Match
	Rates    *entities.RateTable
}

func (r GuidedResult) Empty() bool { return len(r.Matches) == 0 }

type IGuidedUseCase interface {
	Match(ctx context.Context, c guided.Criteria) (GuidedResult, error)
}

type GuidedUseCase struct {
	items interfaces.IItemRepository
	rates IRateProvider
}

var _ IGuidedUseCase = (*GuidedUseCase)(nil)

func NewGuidedUseCase(items interfaces.IItemRepository, rates IRateProvider) *GuidedUseCase {
	return &GuidedUseCase{items: items, rates: rates}
}

// Match walks a fresh session through every step with the given answers, so
// the same step validation applies as in the interactive flow.
func (u *GuidedUseCase) Match(ctx context.Context, c guided.Criteria) (GuidedResult, error) {
	s := guided.NewSession()

	steps := []func() error{
		func() error { return s.SetOccasion(c.Occasion) },
		s.Next,
		func() error { return s.SetBudget(c.Budget) },
		func() error {
			if err := s.Next(); err != nil {
				return ErrInvalidBudget
			}
			return nil
		},
		func() error { return s.SetRecipient(c.Recipient) },
		s.Next,
		func() error { return s.SetStyle(c.Style) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return GuidedResult{}, err
		}
	}

	rates := u.rates.Current(ctx, LastKnownGood)
	matches, err := s.Finish(ctx, catalogueQuery{repo: u.items}, rates)
	if err != nil {
		logging.Error("[guided][usecase] catalogue query failed", zap.String("occasion", string(c.Occasion)), zap.Error(err))
		return GuidedResult{}, errors.Join(ErrCatalogueUnavailable, err)
	}

	logging.Info("[guided][usecase] matched",
		zap.String("occasion", string(c.Occasion)),
		zap.String("style", string(c.Style)),
		zap.Int("matches", len(matches)),
	)
	return GuidedResult{Criteria: s.Criteria(), Matches: matches, Rates: rates}, nil
}

// catalogueQuery adapts the item repository to the guided flow's querier.
type catalogueQuery struct {
	repo interfaces.IItemRepository
}

func (q catalogueQuery) List(ctx context.Context, f entities.ItemFilter) ([]entities.Item, error) {
	return q.repo.List(ctx, f, CatalogueLimit)
}
