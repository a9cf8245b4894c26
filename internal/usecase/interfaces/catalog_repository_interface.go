package interfaces

import (
	"context"

	"clubpay/internal/domain/entities"
)

// ICatalogRepository abstracts the package/membership catalog collaborator.
//
// The catalog is the source of truth for the price a purchase is charged
// at; the finalizer cross-checks the session amount against it.
type ICatalogRepository interface {
	GetOffering(ctx context.Context, clubID, sku string) (entities.PackageOffering, error)
	ListByClubID(ctx context.Context, clubID string) ([]entities.PackageOffering, error)
}
