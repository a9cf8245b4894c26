package usecase

import (
	"context"
	"log"
	"strings"

	"clubpay/internal/domain/entities"
	"clubpay/internal/usecase/interfaces"
)

// ICatalogUseCase exposes the package offerings a club sells, for the
// selection step that precedes a payment session.

type ICatalogUseCase interface {
	ListOfferings(ctx context.Context, clubID string) ([]entities.PackageOffering, error)
}

type CatalogUseCase struct {
	catalogRepo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalogRepo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalogRepo: catalogRepo}
}

// ListOfferings returns the club's sellable offerings. Inactive entries are
// filtered out; they exist only to keep history for already-sold SKUs.
func (u *CatalogUseCase) ListOfferings(ctx context.Context, clubID string) ([]entities.PackageOffering, error) {
	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return nil, ErrInvalidClubID
	}

	offerings, err := u.catalogRepo.ListByClubID(ctx, clubID)
	if err != nil {
		log.Printf("[catalog][usecase] list failed club_id=%s err=%v", clubID, err)
		return nil, err
	}

	active := make([]entities.PackageOffering, 0, len(offerings))
	for _, o := range offerings {
		if o.Active {
			active = append(active, o)
		}
	}
	log.Printf("[catalog][usecase] list done club_id=%s total=%d active=%d", clubID, len(offerings), len(active))
	return active, nil
}
