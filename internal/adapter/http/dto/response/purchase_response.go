package response

import (
	"time"

	"clubpay/internal/domain/entities"
	"clubpay/internal/usecase"
)

type PurchaseResponse struct {
	RecordID  string `json:"record_id,omitempty"`
	SessionID string `json:"session_id"`
	ClubID    string `json:"club_id"`
	MemberID  string `json:"member_id,omitempty"`
	Guest     bool   `json:"guest,omitempty"`
	SKU       string `json:"sku,omitempty"`
	Price     string `json:"price,omitempty"`
	Currency  string `json:"currency,omitempty"`

	Result PaymentResultResponse `json:"result"`

	// Duplicate marks a replayed finalization answered from the recorded
	// outcome instead of a second charge.
	Duplicate bool `json:"duplicate,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func FromPurchaseOutcome(outcome usecase.PurchaseOutcome) PurchaseResponse {
	resp := PurchaseResponse{
		Result:    *fromCanonicalResult(outcome.Result),
		Duplicate: outcome.Duplicate,
	}
	resp.Result.UserMessage = outcome.UserMessage
	if outcome.Record != nil {
		resp = fillFromRecord(resp, *outcome.Record)
	}
	return resp
}

func FromPurchaseRecord(record entities.PurchaseRecord) PurchaseResponse {
	resp := PurchaseResponse{
		Result: *fromCanonicalResult(record.PaymentResult),
	}
	return fillFromRecord(resp, record)
}

func FromPurchaseRecords(records []entities.PurchaseRecord) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(records))
	for _, record := range records {
		out = append(out, FromPurchaseRecord(record))
	}
	return out
}

func fillFromRecord(resp PurchaseResponse, record entities.PurchaseRecord) PurchaseResponse {
	resp.RecordID = record.RecordID
	resp.SessionID = record.SessionID
	resp.ClubID = record.ClubID
	resp.MemberID = record.MemberID
	resp.Guest = record.Guest
	resp.SKU = record.SKU
	resp.Price = entities.FormatMinorUnits(record.PriceMinorUnits)
	resp.Currency = record.Currency
	createdAt := record.CreatedAt
	if !createdAt.IsZero() {
		resp.CreatedAt = &createdAt
	}
	return resp
}
