package usecase

import (
	"context"
	"errors"
	"testing"

	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/usecase/interfaces"
	mock_interfaces "heritage_gold/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogueUseCase_List(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewCatalogueUseCase(repo, newStaticRates())

		repo.EXPECT().List(gomock.Any(), gomock.Any(), CatalogueLimit).Return(nil, errors.New("db"))

		_, _, err := uc.List(context.Background(), entities.ItemFilter{})
		if !errors.Is(err, ErrCatalogueUnavailable) {
			t.Fatalf("expected ErrCatalogueUnavailable, got %v", err)
		}
	})

	t.Run("prices every item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewCatalogueUseCase(repo, newStaticRates())

		filter := entities.ItemFilter{Occasion: "wedding"}
		repo.EXPECT().List(gomock.Any(), filter, CatalogueLimit).Return([]entities.Item{testItem("A", 16, 20, 500)}, nil)

		got, rates, err := uc.List(context.Background(), filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rates == nil || rates.Gold22K != 6000 {
			t.Fatalf("expected rates, got %+v", rates)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 item, got %d", len(got))
		}
		// 18g * 6500 * 1.03 ; 16g -> 107120 ; 20g -> 133900
		if got[0].Estimate != 120510 || got[0].Range.Min != 107120 || got[0].Range.Max != 133900 {
			t.Fatalf("unexpected pricing: %+v", got[0])
		}
	})
}

func TestCatalogueUseCase_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCatalogueUseCase(nil, newStaticRates())
		_, _, err := uc.Get(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("expected ErrInvalidItemID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewCatalogueUseCase(repo, newStaticRates())
		repo.EXPECT().GetByID(gomock.Any(), "NOPE").Return(entities.Item{}, nil)

		_, _, err := uc.Get(context.Background(), "NOPE")
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewCatalogueUseCase(repo, newStaticRates())
		repo.EXPECT().GetByID(gomock.Any(), "A").Return(entities.Item{}, errors.New("db"))

		_, _, err := uc.Get(context.Background(), "A")
		if !errors.Is(err, ErrCatalogueUnavailable) {
			t.Fatalf("expected ErrCatalogueUnavailable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewCatalogueUseCase(repo, newStaticRates())
		repo.EXPECT().GetByID(gomock.Any(), "A").Return(testItem("A", 16, 20, 500), nil)

		got, _, err := uc.Get(context.Background(), " A ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Range.Mid() != 120510 {
			t.Fatalf("unexpected mid estimate: %d", got.Range.Mid())
		}
	})
}

func TestCatalogueUseCase_Create(t *testing.T) {
	t.Run("invalid item", func(t *testing.T) {
		uc := NewCatalogueUseCase(nil, newStaticRates())
		_, err := uc.Create(context.Background(), entities.Item{Name: "x", Type: "ring", WeightMin: 5, WeightMax: 4})
		if !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewCatalogueUseCase(repo, newStaticRates())
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Item{}, interfaces.ErrAlreadyExists)

		_, err := uc.Create(context.Background(), testItem("A", 1, 2, 0))
		if !errors.Is(err, ErrItemAlreadyExists) {
			t.Fatalf("expected ErrItemAlreadyExists, got %v", err)
		}
	})

	t.Run("assigns id and defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewCatalogueUseCase(repo, newStaticRates())
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Item{})).DoAndReturn(
			func(_ context.Context, it entities.Item) (entities.Item, error) {
				if len(it.ItemID) != 8 || it.Purity != "22K" || it.CreatedAt.IsZero() {
					t.Fatalf("unexpected item: %+v", it)
				}
				return it, nil
			},
		)

		it := testItem("", 4, 6, 600)
		it.Purity = ""
		if _, err := uc.Create(context.Background(), it); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
