package request

import (
	"errors"
	"strings"
)

type MemberPayload struct {
	MemberID string `json:"member_id,omitempty"`
	Guest    bool   `json:"guest,omitempty"`
}

type PackagePayload struct {
	SKU string `json:"sku"`
}

type ContactPayload struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// PaymentPayloadRequest carries whichever artifact the client-side flow
// produced: the one-time card token for the embedded tokenizer, or the
// already-processed transaction fields relayed from the hosted overlay.
type PaymentPayloadRequest struct {
	Processor        string `json:"processor"`
	Token            string `json:"token,omitempty"`
	AlreadyProcessed bool   `json:"already_processed,omitempty"`
	TransactionID    string `json:"transaction_id,omitempty"`
	ApprovalCode     string `json:"approval_code,omitempty"`
	CardBrand        string `json:"card_brand,omitempty"`
	CardMasked       string `json:"card_masked,omitempty"`
	Expiry           string `json:"expiry,omitempty"`
}

// PurchaseCreateRequest is the finalization payload. The session it names
// must have been opened by this service and still be live.
type PurchaseCreateRequest struct {
	SessionID string                `json:"session_id"`
	ClubID    string                `json:"club_id"`
	Member    MemberPayload         `json:"member"`
	Package   PackagePayload        `json:"package"`
	Contact   ContactPayload        `json:"contact,omitempty"`
	Payment   PaymentPayloadRequest `json:"payment"`
}

func (r *PurchaseCreateRequest) Validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return errors.New("session_id is required")
	}
	if strings.TrimSpace(r.ClubID) == "" {
		return errors.New("club_id is required")
	}
	if strings.TrimSpace(r.Payment.Processor) == "" {
		return errors.New("payment.processor is required")
	}
	if !r.Member.Guest && strings.TrimSpace(r.Member.MemberID) == "" {
		return errors.New("member.member_id is required unless guest")
	}
	return nil
}
