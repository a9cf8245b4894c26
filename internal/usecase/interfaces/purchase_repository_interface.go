package interfaces

import (
	"context"

	"clubpay/internal/domain/entities"
)

// IPurchaseRepository abstracts durable persistence of the purchase record.
//
// Create must be conditional on session_id not existing yet: the repository
// is the last line of the at-most-once guarantee behind the in-process
// finalizer guard.
type IPurchaseRepository interface {
	Create(ctx context.Context, record entities.PurchaseRecord) (entities.PurchaseRecord, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.PurchaseRecord, error)
	ListByClubID(ctx context.Context, clubID string) ([]entities.PurchaseRecord, error)
}
