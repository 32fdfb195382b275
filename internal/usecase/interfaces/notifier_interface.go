package interfaces

import (
	"context"
	"heritage_gold/internal/domain/entities"
)

// INotifier tells the shop (and, where relevant, the customer) about new leads.
// Callers treat failures as non-fatal.
type INotifier interface {
	NotifyOrderIntent(ctx context.Context, o entities.OrderIntent) error
	NotifyContact(ctx context.Context, m entities.ContactMessage) error
}
