package processors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clubpay/internal/domain/entities"
)

func convergeTestConfig(baseURL string) entities.ClubPaymentConfig {
	return entities.ClubPaymentConfig{
		ClubID:    "club-1",
		Processor: entities.ProcessorConverge,
		Credentials: entities.MerchantCredentials{
			MerchantID: "0012345",
			UserID:     "webuser",
			Secret:     "pin-secret",
		},
		VendorBaseURL: baseURL,
	}
}

func tokenRequest() entities.TokenRequest {
	return entities.TokenRequest{
		AmountMinorUnits:    4999,
		Currency:            "USD",
		TransactionType:     "ccsale",
		CustomerCode:        "m-77",
		RequestVaultStorage: true,
	}
}

func TestConvergeClient_IssueToken(t *testing.T) {
	t.Run("sends merchant identity and transaction fields", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/hosted-payments/transaction_token" {
				t.Errorf("path = %q", r.URL.Path)
			}
			if err := r.ParseForm(); err != nil {
				t.Fatalf("parse form: %v", err)
			}
			if r.PostForm.Get("ssl_merchant_id") != "0012345" {
				t.Errorf("ssl_merchant_id = %q", r.PostForm.Get("ssl_merchant_id"))
			}
			if r.PostForm.Get("ssl_pin") != "pin-secret" {
				t.Errorf("ssl_pin = %q", r.PostForm.Get("ssl_pin"))
			}
			if r.PostForm.Get("ssl_amount") != "49.99" {
				t.Errorf("ssl_amount = %q", r.PostForm.Get("ssl_amount"))
			}
			if r.PostForm.Get("ssl_get_token") != "Y" || r.PostForm.Get("ssl_add_token") != "Y" {
				t.Errorf("vault flags missing: %v", r.PostForm)
			}
			w.Write([]byte("tok-ABC123"))
		}))
		defer srv.Close()

		client := NewConvergeClient()
		grant, err := client.IssueToken(context.Background(), convergeTestConfig(srv.URL), tokenRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if grant.AuthToken != "tok-ABC123" {
			t.Fatalf("token = %q", grant.AuthToken)
		}
		if grant.ExpiresAt.IsZero() {
			t.Fatalf("expected an expiry on the grant")
		}
	})

	t.Run("json body with token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"token": "tok-json-1"}`))
		}))
		defer srv.Close()

		client := NewConvergeClient()
		grant, err := client.IssueToken(context.Background(), convergeTestConfig(srv.URL), tokenRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if grant.AuthToken != "tok-json-1" {
			t.Fatalf("token = %q", grant.AuthToken)
		}
	})

	t.Run("json error body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"result": "1", "errorMessage": "invalid credentials"}`))
		}))
		defer srv.Close()

		client := NewConvergeClient()
		_, err := client.IssueToken(context.Background(), convergeTestConfig(srv.URL), tokenRequest())
		if err == nil || !strings.Contains(err.Error(), "invalid credentials") {
			t.Fatalf("expected vendor error, got %v", err)
		}
	})

	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewConvergeClient()
		if _, err := client.IssueToken(context.Background(), convergeTestConfig(srv.URL), tokenRequest()); err == nil {
			t.Fatalf("expected error on 502")
		}
	})

	t.Run("missing base url", func(t *testing.T) {
		client := NewConvergeClient()
		cfg := convergeTestConfig("")
		if _, err := client.IssueToken(context.Background(), cfg, tokenRequest()); err != ErrConvergeBaseURLMissing {
			t.Fatalf("expected ErrConvergeBaseURLMissing, got %v", err)
		}
	})
}

func TestParseConvergeTokenResponse(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		token   string
		wantErr bool
	}{
		{"bare token", "tok-1", "tok-1", false},
		{"bare token with whitespace", "  tok-1\n", "tok-1", false},
		{"json token", `{"token": "tok-2"}`, "tok-2", false},
		{"form token", "token=tok-3", "tok-3", false},
		{"form error", "errorMessage=denied", "", true},
		{"empty", "", "", true},
		{"prose body", "something went wrong here", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := parseConvergeTokenResponse([]byte(tc.body))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got token %q", token)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != tc.token {
				t.Fatalf("token = %q, want %q", token, tc.token)
			}
		})
	}
}
