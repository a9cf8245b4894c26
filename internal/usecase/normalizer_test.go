package usecase

import (
	"encoding/json"
	"testing"

	"clubpay/internal/domain/entities"
)

func TestNormalizeProcessorResponse_Converge(t *testing.T) {
	t.Run("approved with explicit zero result", func(t *testing.T) {
		raw := json.RawMessage(`{
			"ssl_result": "0",
			"ssl_result_message": "APPROVAL",
			"ssl_approval_code": "000123",
			"ssl_txn_id": "txn-8842",
			"ssl_card_number": "41**********1111",
			"ssl_card_short_description": "VISA",
			"ssl_exp_date": "1225"
		}`)
		res := NormalizeProcessorResponse(entities.ProcessorConverge, raw)

		if res.Status != entities.ResultStatusApproved {
			t.Fatalf("expected approved, got %s (%s)", res.Status, res.DeclineReason)
		}
		if res.TransactionID != "txn-8842" {
			t.Errorf("transaction id = %q", res.TransactionID)
		}
		if res.ApprovalCode != "000123" {
			t.Errorf("approval code = %q", res.ApprovalCode)
		}
		if res.MaskedPAN != "1111" {
			t.Errorf("masked pan = %q, want last four only", res.MaskedPAN)
		}
		if res.CardBrand != "VISA" {
			t.Errorf("card brand = %q", res.CardBrand)
		}
		if res.ExpiryMonthYear != "12/25" {
			t.Errorf("expiry = %q, want 12/25", res.ExpiryMonthYear)
		}
		if res.RawPayloadDigest == "" {
			t.Errorf("expected a payload digest")
		}
	})

	t.Run("declined with nonzero result", func(t *testing.T) {
		raw := json.RawMessage(`{"ssl_result": "1", "ssl_result_message": "DECLINED: INSUFFICIENT FUNDS"}`)
		res := NormalizeProcessorResponse(entities.ProcessorConverge, raw)
		if res.Status != entities.ResultStatusDeclined {
			t.Fatalf("expected declined, got %s", res.Status)
		}
		if res.DeclineReason != "DECLINED: INSUFFICIENT FUNDS" {
			t.Errorf("decline reason = %q", res.DeclineReason)
		}
	})

	t.Run("approved wording without result code", func(t *testing.T) {
		raw := json.RawMessage(`{"ssl_result_message": "Approved", "ssl_txn_id": "txn-1"}`)
		res := NormalizeProcessorResponse(entities.ProcessorConverge, raw)
		if res.Status != entities.ResultStatusApproved {
			t.Fatalf("expected approved via message fallback, got %s", res.Status)
		}
	})

	t.Run("zero result with declined wording is a conflict", func(t *testing.T) {
		raw := json.RawMessage(`{"ssl_result": "0", "ssl_result_message": "DECLINED"}`)
		res := NormalizeProcessorResponse(entities.ProcessorConverge, raw)
		if res.Status != entities.ResultStatusErrored {
			t.Fatalf("expected errored on conflict, got %s", res.Status)
		}
		if res.DeclineReason != "conflicting processor result" {
			t.Errorf("decline reason = %q", res.DeclineReason)
		}
	})

	t.Run("nonzero result with approved wording is a conflict", func(t *testing.T) {
		raw := json.RawMessage(`{"ssl_result": "2", "ssl_result_message": "APPROVAL"}`)
		res := NormalizeProcessorResponse(entities.ProcessorConverge, raw)
		if res.Status != entities.ResultStatusErrored {
			t.Fatalf("expected errored on conflict, got %s", res.Status)
		}
	})

	t.Run("error fields map to errored", func(t *testing.T) {
		raw := json.RawMessage(`{"errorName": "5000", "errorMessage": "Credit card number is invalid"}`)
		res := NormalizeProcessorResponse(entities.ProcessorConverge, raw)
		if res.Status != entities.ResultStatusErrored {
			t.Fatalf("expected errored, got %s", res.Status)
		}
		if res.DeclineReason != "Credit card number is invalid" {
			t.Errorf("decline reason = %q", res.DeclineReason)
		}
	})

	t.Run("unrecognized payload never approves", func(t *testing.T) {
		for _, raw := range []json.RawMessage{
			json.RawMessage(`{"something": "else"}`),
			json.RawMessage(`not json at all`),
			json.RawMessage(`{}`),
		} {
			res := NormalizeProcessorResponse(entities.ProcessorConverge, raw)
			if res.Status != entities.ResultStatusErrored {
				t.Errorf("payload %s: expected errored, got %s", raw, res.Status)
			}
			if res.DeclineReason != "unrecognized processor response" {
				t.Errorf("payload %s: decline reason = %q", raw, res.DeclineReason)
			}
		}
	})

	t.Run("full pan in payload yields last four only", func(t *testing.T) {
		raw := json.RawMessage(`{"ssl_result": "0", "ssl_result_message": "APPROVAL", "ssl_account_number": "4111111111111111"}`)
		res := NormalizeProcessorResponse(entities.ProcessorConverge, raw)
		if res.MaskedPAN != "1111" {
			t.Fatalf("masked pan = %q, want 1111", res.MaskedPAN)
		}
	})
}

func TestNormalizeProcessorResponse_PayTrace(t *testing.T) {
	t.Run("approved via success flag", func(t *testing.T) {
		raw := json.RawMessage(`{
			"success": true,
			"response_code": 101,
			"status_message": "Your transaction was successfully approved.",
			"transaction_id": 93587251,
			"approval_code": "TAS671",
			"card_type": "Visa",
			"masked_card_number": "xxxxxxxxxxxx1111",
			"expiration": "12/25"
		}`)
		res := NormalizeProcessorResponse(entities.ProcessorPayTrace, raw)

		if res.Status != entities.ResultStatusApproved {
			t.Fatalf("expected approved, got %s (%s)", res.Status, res.DeclineReason)
		}
		if res.TransactionID != "93587251" {
			t.Errorf("transaction id = %q", res.TransactionID)
		}
		if res.MaskedPAN != "1111" {
			t.Errorf("masked pan = %q", res.MaskedPAN)
		}
		if res.ExpiryMonthYear != "12/25" {
			t.Errorf("expiry = %q", res.ExpiryMonthYear)
		}
	})

	t.Run("declined via success false", func(t *testing.T) {
		raw := json.RawMessage(`{"success": false, "response_code": 102, "status_message": "Your transaction was not approved. EXPIRED CARD"}`)
		res := NormalizeProcessorResponse(entities.ProcessorPayTrace, raw)
		if res.Status != entities.ResultStatusDeclined {
			t.Fatalf("expected declined, got %s", res.Status)
		}
		if res.DeclineReason == "" {
			t.Errorf("expected a decline reason")
		}
	})

	t.Run("success true with declined wording is a conflict", func(t *testing.T) {
		raw := json.RawMessage(`{"success": true, "status_message": "declined"}`)
		res := NormalizeProcessorResponse(entities.ProcessorPayTrace, raw)
		if res.Status != entities.ResultStatusErrored {
			t.Fatalf("expected errored on conflict, got %s", res.Status)
		}
	})

	t.Run("error field maps to errored", func(t *testing.T) {
		raw := json.RawMessage(`{"error": "invalid hpf token"}`)
		res := NormalizeProcessorResponse(entities.ProcessorPayTrace, raw)
		if res.Status != entities.ResultStatusErrored {
			t.Fatalf("expected errored, got %s", res.Status)
		}
		if res.DeclineReason != "invalid hpf token" {
			t.Errorf("decline reason = %q", res.DeclineReason)
		}
	})

	t.Run("unrecognized payload maps to errored", func(t *testing.T) {
		res := NormalizeProcessorResponse(entities.ProcessorPayTrace, json.RawMessage(`{"foo": "bar"}`))
		if res.Status != entities.ResultStatusErrored {
			t.Fatalf("expected errored, got %s", res.Status)
		}
	})
}

func TestNormalizeExpiry(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"1225", "12/25"},
		{"12/25", "12/25"},
		{"0130", "01/30"},
		{" 1225 ", "12/25"},
		{"1325", ""},
		{"0025", ""},
		{"125", ""},
		{"12-25", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizeExpiry(tc.raw); got != tc.want {
			t.Errorf("normalizeExpiry(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestLastFourDigits(t *testing.T) {
	cases := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"masked with last four", []string{"41**********1111"}, "1111"},
		{"full pan is truncated", []string{"4111111111111111"}, "1111"},
		{"first empty candidate skipped", []string{"", "xxxx1234"}, "1234"},
		{"short digit run kept as-is", []string{"xx12"}, "12"},
		{"no digits", []string{"no-digits-here"}, ""},
		{"nothing populated", []string{"", ""}, ""},
	}
	for _, tc := range cases {
		if got := lastFourDigits(tc.candidates...); got != tc.want {
			t.Errorf("%s: lastFourDigits(%v) = %q, want %q", tc.name, tc.candidates, got, tc.want)
		}
	}
}
