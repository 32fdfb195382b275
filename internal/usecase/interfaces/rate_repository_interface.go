package interfaces

import (
	"context"
	"heritage_gold/internal/domain/entities"
)

// IRateRepository keeps rate snapshots so the last known table survives restarts.
//
// Latest returns nil when nothing has been stored yet.
type IRateRepository interface {
	Save(ctx context.Context, table entities.RateTable) error
	Latest(ctx context.Context) (*entities.RateTable, error)
}

// IRateFeed fetches the current market rates from an external quote service.
type IRateFeed interface {
	Fetch(ctx context.Context) (entities.RateTable, error)
}
