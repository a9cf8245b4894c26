package response

import (
	"time"

	"clubpay/internal/domain/entities"
)

type PaymentResultResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
	ApprovalCode  string `json:"approval_code,omitempty"`
	CardBrand     string `json:"card_brand,omitempty"`
	MaskedPAN     string `json:"masked_pan,omitempty"`
	Expiry        string `json:"expiry,omitempty"`
	DeclineReason string `json:"decline_reason,omitempty"`
	UserMessage   string `json:"user_message,omitempty"`
}

type PaymentSessionResponse struct {
	SessionID string `json:"session_id"`
	Processor string `json:"processor"`
	ClubID    string `json:"club_id"`
	SKU       string `json:"sku,omitempty"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`

	// PaymentToken is only populated on session creation; it is the
	// single-use vendor token the client mounts the payment surface with.
	PaymentToken string `json:"payment_token,omitempty"`

	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`

	Result *PaymentResultResponse `json:"result,omitempty"`
}

type SessionEventResponse struct {
	Accepted bool   `json:"accepted"`
	Status   string `json:"status"`
}

func FromPaymentSession(s *entities.PaymentSession) PaymentSessionResponse {
	resp := PaymentSessionResponse{
		SessionID: s.SessionID,
		Processor: string(s.Processor),
		ClubID:    s.ClubID,
		SKU:       s.SKU,
		Amount:    entities.FormatMinorUnits(s.AmountMinorUnits),
		Currency:  s.Currency,
		Status:    string(s.Status()),
		IssuedAt:  s.IssuedAt,
		ExpiresAt: s.ExpiresAt,
	}
	if result := s.Result(); result != nil {
		resp.Result = fromCanonicalResult(*result)
	}
	return resp
}

// FromIssuedPaymentSession is the creation-time variant that discloses the
// vendor token. Every other read path leaves the token out.
func FromIssuedPaymentSession(s *entities.PaymentSession) PaymentSessionResponse {
	resp := FromPaymentSession(s)
	resp.PaymentToken = s.AuthToken
	return resp
}

func fromCanonicalResult(result entities.CanonicalPaymentResult) *PaymentResultResponse {
	return &PaymentResultResponse{
		Status:        string(result.Status),
		TransactionID: result.TransactionID,
		ApprovalCode:  result.ApprovalCode,
		CardBrand:     result.CardBrand,
		MaskedPAN:     result.MaskedPAN,
		Expiry:        result.ExpiryMonthYear,
		DeclineReason: result.DeclineReason,
		UserMessage:   result.UserMessage(),
	}
}
