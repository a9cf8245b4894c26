package entities

import "strings"

// MerchantCredentials is the merchant identity a club uses against its
// processor. All three parts are required; a partial set is a deployment
// defect, not a transient fault.
type MerchantCredentials struct {
	MerchantID string `json:"merchant_id"`
	UserID     string `json:"user_id"`
	Secret     string `json:"-"`
}

func (c MerchantCredentials) Complete() bool {
	return strings.TrimSpace(c.MerchantID) != "" &&
		strings.TrimSpace(c.UserID) != "" &&
		strings.TrimSpace(c.Secret) != ""
}

// ClubPaymentConfig maps a club/region to its processor integration and
// merchant credentials. It is read from the configuration store and never
// created or mutated by this service.
//
// Storage model (DynamoDB):
//   - PK: club_id
type ClubPaymentConfig struct {
	ClubID         string              `json:"club_id"`
	Processor      Processor           `json:"processor"`
	Credentials    MerchantCredentials `json:"credentials"`
	VendorBaseURL  string              `json:"vendor_base_url"`
	AllowedOrigins []string            `json:"allowed_origins"`
}

// PackageOffering is a sellable add-on package or membership. The catalog is
// the source of truth for the price a purchase may be charged at.
//
// Storage model (DynamoDB):
//   - PK: club_id, SK: sku
type PackageOffering struct {
	ClubID          string `json:"club_id"`
	SKU             string `json:"sku"`
	Name            string `json:"name"`
	PriceMinorUnits int64  `json:"price_minor_units"`
	Currency        string `json:"currency"`
	Active          bool   `json:"active"`
}
