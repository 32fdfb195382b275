package usecase

import (
	"context"
	"errors"
	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/domain/pricing"
	"heritage_gold/internal/logging"
	"heritage_gold/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogueLimit caps how many items a single catalogue query returns.
const CatalogueLimit = 100

var (
	ErrItemNotFound         = errors.New("item not found")
	ErrItemAlreadyExists    = errors.New("item already exists")
	ErrInvalidItemID        = errors.New("invalid item id")
	ErrInvalidItem          = errors.New("invalid item")
	ErrCatalogueUnavailable = errors.New("catalogue unavailable")
)

// PricedItem is a catalogue item with its estimates under the current rates.
type PricedItem struct {
	Item     entities.Item
	Estimate int64
	Range    pricing.PriceRange
}

type ICatalogueUseCase interface {
	List(ctx context.Context, filter entities.ItemFilter) ([]PricedItem, *entities.RateTable, error)
	Get(ctx context.Context, id string) (PricedItem, *entities.RateTable, error)
	Create(ctx context.Context, item entities.Item) (entities.Item, error)
}

type CatalogueUseCase struct {
	repo  interfaces.IItemRepository
	rates IRateProvider
}

var _ ICatalogueUseCase = (*CatalogueUseCase)(nil)

func NewCatalogueUseCase(repo interfaces.IItemRepository, rates IRateProvider) *CatalogueUseCase {
	return &CatalogueUseCase{repo: repo, rates: rates}
}

func (u *CatalogueUseCase) List(ctx context.Context, filter entities.ItemFilter) ([]PricedItem, *entities.RateTable, error) {
	items, err := u.repo.List(ctx, filter, CatalogueLimit)
	if err != nil {
		logging.Error("[catalogue][usecase] list failed", zap.Error(err))
		return nil, nil, errors.Join(ErrCatalogueUnavailable, err)
	}

	rates := u.rates.Current(ctx, LastKnownGood)
	out := make([]PricedItem, 0, len(items))
	for _, it := range items {
		out = append(out, priceItem(it, rates))
	}
	return out, rates, nil
}

func (u *CatalogueUseCase) Get(ctx context.Context, id string) (PricedItem, *entities.RateTable, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PricedItem{}, nil, ErrInvalidItemID
	}

	it, err := u.repo.GetByID(ctx, id)
	if err != nil {
		logging.Error("[catalogue][usecase] get failed", zap.String("item_id", id), zap.Error(err))
		return PricedItem{}, nil, errors.Join(ErrCatalogueUnavailable, err)
	}
	if it.ItemID == "" {
		return PricedItem{}, nil, ErrItemNotFound
	}

	rates := u.rates.Current(ctx, LastKnownGood)
	return priceItem(it, rates), rates, nil
}

func (u *CatalogueUseCase) Create(ctx context.Context, item entities.Item) (entities.Item, error) {
	item.ItemID = strings.TrimSpace(item.ItemID)
	item.Name = strings.TrimSpace(item.Name)
	item.Type = strings.TrimSpace(item.Type)
	if err := item.Validate(); err != nil {
		return entities.Item{}, ErrInvalidItem
	}

	if item.ItemID == "" {
		item.ItemID = shortID()
	}
	if item.Purity == "" {
		item.Purity = string(pricing.MidTierPurity)
	}
	item.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Item{}, ErrItemAlreadyExists
		}
		logging.Error("[catalogue][usecase] create failed", zap.String("item_id", item.ItemID), zap.Error(err))
		return entities.Item{}, errors.Join(ErrCatalogueUnavailable, err)
	}
	logging.Info("[catalogue][usecase] item created", zap.String("item_id", created.ItemID))
	return created, nil
}

func priceItem(it entities.Item, rates *entities.RateTable) PricedItem {
	return PricedItem{
		Item:     it,
		Estimate: pricing.EstimateItem(it, rates),
		Range:    pricing.EstimateRange(it, rates),
	}
}

// shortID is an 8-character upper-case hex identifier shown to customers.
func shortID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
