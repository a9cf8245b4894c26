package interfaces

import (
	"context"

	"clubpay/internal/domain/entities"
)

// IClubConfigRepository abstracts the configuration store that maps a club
// to its processor integration and merchant credentials.
//
// The store is read-only for this service: a missing or incomplete mapping
// is a deployment defect and is never retried.
type IClubConfigRepository interface {
	GetByClubID(ctx context.Context, clubID string) (entities.ClubPaymentConfig, error)
}
