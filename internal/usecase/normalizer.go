package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"clubpay/internal/domain/entities"
)

// Response normalization: maps either processor's raw payload into the one
// canonical result type.
//
// Decision rules, in order of authority:
//  1. explicit result codes (ssl_result, response_code/success flag)
//  2. "approved"/"declined" wording in the result message, as fallback only
//  3. a populated error field -> errored
//  4. nothing recognizable -> errored ("unrecognized processor response");
//     an unknown shape is a terminal business outcome, never a Go error,
//     and is never treated as approved.
//
// A conflict between an explicit code and the message wording is reported as
// errored rather than guessed at.

const (
	reasonUnrecognized = "unrecognized processor response"
	reasonConflicting  = "conflicting processor result"
)

// convergeResponse is the hosted-overlay payload shape. The vendor is
// inconsistent about which field carries the masked card number, so all
// known spellings are captured and checked in order.
type convergeResponse struct {
	Result        string `json:"ssl_result"`
	ResultMessage string `json:"ssl_result_message"`
	ApprovalCode  string `json:"ssl_approval_code"`
	TxnID         string `json:"ssl_txn_id"`
	CardNumber    string `json:"ssl_card_number"`
	AccountNumber string `json:"ssl_account_number"`
	CardType      string `json:"ssl_card_type"`
	CardShortDesc string `json:"ssl_card_short_description"`
	ExpDate       string `json:"ssl_exp_date"`
	ErrorName     string `json:"errorName"`
	ErrorMessage  string `json:"errorMessage"`
}

func (r convergeResponse) recognized() bool {
	return r.Result != "" || r.ResultMessage != "" || r.ApprovalCode != "" ||
		r.TxnID != "" || r.ErrorName != "" || r.ErrorMessage != ""
}

// paytraceResponse is the embedded-tokenizer sale payload shape.
type paytraceResponse struct {
	Success         *bool       `json:"success"`
	ResponseCode    int         `json:"response_code"`
	StatusMessage   string      `json:"status_message"`
	TransactionID   json.Number `json:"transaction_id"`
	ApprovalCode    string      `json:"approval_code"`
	ApprovalMessage string      `json:"approval_message"`
	CardType        string      `json:"card_type"`
	MaskedCard      string      `json:"masked_card_number"`
	MaskedNumber    string      `json:"masked_number"`
	Expiration      string      `json:"expiration"`
	ErrorMessage    string      `json:"error"`
}

func (r paytraceResponse) recognized() bool {
	return r.Success != nil || r.ResponseCode != 0 || r.StatusMessage != "" ||
		r.ApprovalCode != "" || r.TransactionID.String() != "" || r.ErrorMessage != ""
}

// NormalizeProcessorResponse maps a raw processor payload into the canonical
// payment result. It never fails: unparseable or unrecognized payloads come
// back as errored results.
func NormalizeProcessorResponse(processor entities.Processor, raw json.RawMessage) entities.CanonicalPaymentResult {
	digest := payloadDigest(raw)
	switch processor {
	case entities.ProcessorConverge:
		return normalizeConverge(raw, digest)
	case entities.ProcessorPayTrace:
		return normalizePayTrace(raw, digest)
	default:
		return unrecognizedResult(digest)
	}
}

func normalizeConverge(raw json.RawMessage, digest string) entities.CanonicalPaymentResult {
	var resp convergeResponse
	if err := json.Unmarshal(raw, &resp); err != nil || !resp.recognized() {
		return unrecognizedResult(digest)
	}

	res := entities.CanonicalPaymentResult{
		TransactionID:    resp.TxnID,
		ApprovalCode:     resp.ApprovalCode,
		CardBrand:        firstNonEmpty(resp.CardShortDesc, resp.CardType),
		MaskedPAN:        lastFourDigits(resp.CardNumber, resp.AccountNumber),
		ExpiryMonthYear:  normalizeExpiry(resp.ExpDate),
		RawPayloadDigest: digest,
	}

	message := strings.ToLower(resp.ResultMessage)
	switch {
	case resp.Result == "0":
		if strings.Contains(message, "declin") && !strings.Contains(message, "approv") {
			res.Status = entities.ResultStatusErrored
			res.DeclineReason = reasonConflicting
			return res
		}
		res.Status = entities.ResultStatusApproved
	case isNumeric(resp.Result):
		if strings.Contains(message, "approv") && !strings.Contains(message, "declin") {
			res.Status = entities.ResultStatusErrored
			res.DeclineReason = reasonConflicting
			return res
		}
		res.Status = entities.ResultStatusDeclined
		res.DeclineReason = firstNonEmpty(resp.ResultMessage, resp.ErrorMessage)
	case strings.Contains(message, "approv"):
		res.Status = entities.ResultStatusApproved
	case strings.Contains(message, "declin"):
		res.Status = entities.ResultStatusDeclined
		res.DeclineReason = resp.ResultMessage
	case resp.ErrorMessage != "" || resp.ErrorName != "":
		res.Status = entities.ResultStatusErrored
		res.DeclineReason = firstNonEmpty(resp.ErrorMessage, resp.ErrorName)
	default:
		res.Status = entities.ResultStatusErrored
		res.DeclineReason = reasonUnrecognized
	}
	return res
}

func normalizePayTrace(raw json.RawMessage, digest string) entities.CanonicalPaymentResult {
	var resp paytraceResponse
	if err := json.Unmarshal(raw, &resp); err != nil || !resp.recognized() {
		return unrecognizedResult(digest)
	}

	res := entities.CanonicalPaymentResult{
		TransactionID:    resp.TransactionID.String(),
		ApprovalCode:     resp.ApprovalCode,
		CardBrand:        resp.CardType,
		MaskedPAN:        lastFourDigits(resp.MaskedCard, resp.MaskedNumber),
		ExpiryMonthYear:  normalizeExpiry(resp.Expiration),
		RawPayloadDigest: digest,
	}

	message := strings.ToLower(firstNonEmpty(resp.StatusMessage, resp.ApprovalMessage))
	switch {
	case resp.Success != nil && *resp.Success:
		if strings.Contains(message, "declin") && !strings.Contains(message, "approv") {
			res.Status = entities.ResultStatusErrored
			res.DeclineReason = reasonConflicting
			return res
		}
		res.Status = entities.ResultStatusApproved
	case resp.Success != nil:
		if strings.Contains(message, "approv") && !strings.Contains(message, "declin") {
			res.Status = entities.ResultStatusErrored
			res.DeclineReason = reasonConflicting
			return res
		}
		res.Status = entities.ResultStatusDeclined
		res.DeclineReason = firstNonEmpty(resp.StatusMessage, resp.ErrorMessage)
	case strings.Contains(message, "approv"):
		res.Status = entities.ResultStatusApproved
	case strings.Contains(message, "declin"):
		res.Status = entities.ResultStatusDeclined
		res.DeclineReason = resp.StatusMessage
	case resp.ErrorMessage != "":
		res.Status = entities.ResultStatusErrored
		res.DeclineReason = resp.ErrorMessage
	default:
		res.Status = entities.ResultStatusErrored
		res.DeclineReason = reasonUnrecognized
	}
	return res
}

func unrecognizedResult(digest string) entities.CanonicalPaymentResult {
	return entities.CanonicalPaymentResult{
		Status:           entities.ResultStatusErrored,
		DeclineReason:    reasonUnrecognized,
		RawPayloadDigest: digest,
	}
}

var trailingDigitsRe = regexp.MustCompile(`(\d+)\s*$`)

// lastFourDigits extracts at most the last 4 digits from whichever candidate
// field is populated. Even a payload that leaks a full PAN yields only the
// trailing 4 digits.
func lastFourDigits(candidates ...string) string {
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		m := trailingDigitsRe.FindStringSubmatch(c)
		if m == nil {
			continue
		}
		digits := m[1]
		if len(digits) > 4 {
			digits = digits[len(digits)-4:]
		}
		return digits
	}
	return ""
}

var (
	expiryMMYYRe    = regexp.MustCompile(`^(\d{2})(\d{2})$`)
	expirySlashedRe = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
)

// normalizeExpiry folds both source formats ("1225", "12/25") into the
// canonical "MM/YY". Anything malformed normalizes to the empty string.
func normalizeExpiry(raw string) string {
	raw = strings.TrimSpace(raw)
	var mm, yy string
	if m := expiryMMYYRe.FindStringSubmatch(raw); m != nil {
		mm, yy = m[1], m[2]
	} else if m := expirySlashedRe.FindStringSubmatch(raw); m != nil {
		mm, yy = m[1], m[2]
	} else {
		return ""
	}
	month, err := strconv.Atoi(mm)
	if err != nil || month < 1 || month > 12 {
		return ""
	}
	return mm + "/" + yy
}

func payloadDigest(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
