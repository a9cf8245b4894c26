package entities

import "strings"

// ResultStatus is the processor-agnostic payment outcome.

type ResultStatus string

const (
	ResultStatusApproved  ResultStatus = "approved"
	ResultStatusDeclined  ResultStatus = "declined"
	ResultStatusCancelled ResultStatus = "cancelled"
	ResultStatusErrored   ResultStatus = "errored"
	ResultStatusTimedOut  ResultStatus = "timed_out"
)

// CanonicalPaymentResult is the single normalized representation of a
// payment outcome, produced exactly once per session by the response
// normalizer and immutable afterwards.
//
// PCI notes:
//   - MaskedPAN never carries more than the last 4 digits, whatever the
//     processor put in its raw payload.
//   - RawPayloadDigest is a SHA-256 reference to the raw payload for
//     diagnostics; the payload itself is never stored verbatim.
type CanonicalPaymentResult struct {
	Status           ResultStatus `json:"status"`
	TransactionID    string       `json:"transaction_id,omitempty"`
	ApprovalCode     string       `json:"approval_code,omitempty"`
	CardBrand        string       `json:"card_brand,omitempty"`
	MaskedPAN        string       `json:"masked_pan,omitempty"`
	ExpiryMonthYear  string       `json:"expiry,omitempty"`
	DeclineReason    string       `json:"decline_reason,omitempty"`
	RawPayloadDigest string       `json:"raw_payload_digest,omitempty"`
}

func (r CanonicalPaymentResult) Approved() bool {
	return r.Status == ResultStatusApproved
}

// SessionStatus maps the canonical outcome onto the session state machine.
func (r CanonicalPaymentResult) SessionStatus() SessionStatus {
	switch r.Status {
	case ResultStatusApproved:
		return SessionStatusApproved
	case ResultStatusDeclined:
		return SessionStatusDeclined
	case ResultStatusCancelled:
		return SessionStatusCancelled
	case ResultStatusTimedOut:
		return SessionStatusTimedOut
	default:
		return SessionStatusErrored
	}
}

// UserMessage renders the single human-readable outcome line shown to the
// customer. Non-approved outcomes get a "contact support" suggestion unless
// the message already carries one.
func (r CanonicalPaymentResult) UserMessage() string {
	switch r.Status {
	case ResultStatusApproved:
		return "Payment approved."
	case ResultStatusDeclined:
		msg := "Your card was declined."
		if r.DeclineReason != "" {
			msg = "Your card was declined: " + r.DeclineReason + "."
		}
		return withSupportSuggestion(msg)
	case ResultStatusCancelled:
		return "The payment was cancelled before completion."
	case ResultStatusTimedOut:
		return withSupportSuggestion("We did not receive a result from the payment provider. Please verify with your bank that no charge was made before retrying.")
	default:
		msg := "The payment could not be completed."
		if r.DeclineReason != "" {
			msg = "The payment could not be completed: " + r.DeclineReason + "."
		}
		return withSupportSuggestion(msg)
	}
}

func withSupportSuggestion(msg string) string {
	if strings.Contains(strings.ToLower(msg), "support") {
		return msg
	}
	return msg + " If the problem persists, please contact support."
}
