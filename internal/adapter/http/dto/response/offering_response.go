package response

import (
	"clubpay/internal/domain/entities"
)

type OfferingResponse struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

func FromPackageOffering(offering entities.PackageOffering) OfferingResponse {
	return OfferingResponse{
		SKU:      offering.SKU,
		Name:     offering.Name,
		Price:    entities.FormatMinorUnits(offering.PriceMinorUnits),
		Currency: offering.Currency,
	}
}

func FromPackageOfferings(offerings []entities.PackageOffering) []OfferingResponse {
	out := make([]OfferingResponse, 0, len(offerings))
	for _, o := range offerings {
		out = append(out, FromPackageOffering(o))
	}
	return out
}
