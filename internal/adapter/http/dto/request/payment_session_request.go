package request

import (
	"errors"
	"strings"
)

// PaymentSessionCreateRequest is the payload for opening a payment session.
//
// `amount` is the display price in major units (49.99); the server converts
// it to minor units and re-prices from the catalog at finalization when a
// `sku` is present.
type PaymentSessionCreateRequest struct {
	ClubID          string  `json:"club_id"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency,omitempty"`
	TransactionType string  `json:"transaction_type,omitempty"`
	SKU             string  `json:"sku,omitempty"`
	CustomerCode    string  `json:"customer_code,omitempty"`
}

func (r *PaymentSessionCreateRequest) Validate() error {
	if strings.TrimSpace(r.ClubID) == "" {
		return errors.New("club_id is required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}
