package usecase

import (
	"context"
	"errors"
	"testing"

	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/domain/guided"
	"heritage_gold/internal/domain/pricing"
	mock_interfaces "heritage_gold/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validCriteria() guided.Criteria {
	return guided.Criteria{
		Occasion:  guided.OccasionWedding,
		Budget:    guided.Budget{Min: 100000, Max: 200000},
		Recipient: guided.RecipientWife,
		Style:     pricing.WeightMedium,
	}
}

func TestGuidedUseCase_Match(t *testing.T) {
	t.Run("step validation", func(t *testing.T) {
		uc := NewGuidedUseCase(nil, newStaticRates())

		cases := []struct {
			name   string
			mutate func(c *guided.Criteria)
			want   error
		}{
			{name: "occasion", mutate: func(c *guided.Criteria) { c.Occasion = "party" }, want: guided.ErrInvalidOccasion},
			{name: "budget", mutate: func(c *guided.Criteria) { c.Budget.Min = -1 }, want: ErrInvalidBudget},
			{name: "recipient", mutate: func(c *guided.Criteria) { c.Recipient = "" }, want: guided.ErrInvalidRecipient},
			{name: "style", mutate: func(c *guided.Criteria) { c.Style = "huge" }, want: guided.ErrInvalidStyle},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c := validCriteria()
				tc.mutate(&c)
				_, err := uc.Match(context.Background(), c)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("catalogue failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewGuidedUseCase(repo, newStaticRates())
		repo.EXPECT().List(gomock.Any(), gomock.Any(), CatalogueLimit).Return(nil, errors.New("timeout"))

		_, err := uc.Match(context.Background(), validCriteria())
		if !errors.Is(err, ErrCatalogueUnavailable) || !errors.Is(err, guided.ErrCatalogueFailure) {
			t.Fatalf("expected catalogue failure, got %v", err)
		}
	})

	t.Run("matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewGuidedUseCase(repo, newStaticRates())

		repo.EXPECT().List(gomock.Any(), entities.ItemFilter{Occasion: "wedding", Gender: "female"}, CatalogueLimit).Return([]entities.Item{
			testItem("medium", 16, 20, 500),
			testItem("light", 13, 15, 1500),
			testItem("heavy", 40, 50, 800),
		}, nil)

		res, err := uc.Match(context.Background(), validCriteria())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Empty() || len(res.Matches) != 1 || res.Matches[0].Item.ItemID != "medium" {
			t.Fatalf("unexpected matches: %+v", res.Matches)
		}
	})

	t.Run("empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewGuidedUseCase(repo, newStaticRates())
		repo.EXPECT().List(gomock.Any(), gomock.Any(), CatalogueLimit).Return(nil, nil)

		c := validCriteria()
		c.Budget = guided.Budget{Min: 300000, Max: 100000}
		res, err := uc.Match(context.Background(), c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Empty() {
			t.Fatalf("expected empty result")
		}
	})
}
