package interfaces

import (
	"context"
	"heritage_gold/internal/domain/entities"
)

// IItemRepository abstracts DynamoDB persistence for catalogue items.
//
// GetByID returns a zero Item (empty ItemID) when the id is unknown.
type IItemRepository interface {
	Create(ctx context.Context, item entities.Item) (entities.Item, error)
	GetByID(ctx context.Context, id string) (entities.Item, error)
	List(ctx context.Context, filter entities.ItemFilter, limit int) ([]entities.Item, error)
}
