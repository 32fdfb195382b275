package interfaces

import (
	"context"
	"heritage_gold/internal/domain/entities"
)

type IOrderIntentRepository interface {
	Create(ctx context.Context, o entities.OrderIntent) (entities.OrderIntent, error)
}

type IContactRepository interface {
	Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error)
}

// IProfileRepository stores the single goldsmith profile document.
// Get returns a zero profile (empty Name) when none is stored.
type IProfileRepository interface {
	Get(ctx context.Context) (entities.GoldsmithProfile, error)
	Put(ctx context.Context, p entities.GoldsmithProfile) error
}
