package entities

import "time"

// ContactInfo is the customer contact payload captured by the signup form.
// The service carries it opaquely onto the purchase record.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// PurchaseRecord is the business record persisted once a payment session
// reaches the approved terminal state.
//
// Storage model (DynamoDB):
//   - PK: session_id (one record per payment session, enforced with a
//     conditional put)
//   - GSI1 (club_id-index): club_id
type PurchaseRecord struct {
	RecordID         string                 `json:"record_id"`
	SessionID        string                 `json:"session_id"`
	ClubID           string                 `json:"club_id"`
	MemberID         string                 `json:"member_id"`
	Guest            bool                   `json:"guest,omitempty"`
	SKU              string                 `json:"sku"`
	PriceMinorUnits  int64                  `json:"price_minor_units"`
	Currency         string                 `json:"currency"`
	PaymentResult    CanonicalPaymentResult `json:"payment_result"`
	Contact          ContactInfo            `json:"contact"`
	CreatedAt        time.Time              `json:"created_at"`
}
