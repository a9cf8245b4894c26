package processors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clubpay/internal/domain/entities"
	"clubpay/internal/usecase/interfaces"
)

var ErrConvergeBaseURLMissing = errors.New("missing converge vendor base url")

const (
	convergeTokenPath       = "/hosted-payments/transaction_token"
	convergeDefaultTokenTTL = 15 * time.Minute
)

// ConvergeClient talks to the hosted-overlay processor. Token issuance is a
// form-encoded POST carrying the merchant identity and the transaction
// parameters; the vendor answers with JSON or a form-encoded body holding a
// result code, a result message and, on success, the single-use session
// token the overlay is opened with.
type ConvergeClient struct {
	httpClient *http.Client
}

var _ interfaces.ITokenIssuer = (*ConvergeClient)(nil)

func NewConvergeClient() *ConvergeClient {
	return &ConvergeClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *ConvergeClient) IssueToken(ctx context.Context, cfg entities.ClubPaymentConfig, req entities.TokenRequest) (entities.TokenGrant, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.VendorBaseURL), "/")
	if baseURL == "" {
		return entities.TokenGrant{}, ErrConvergeBaseURLMissing
	}

	form := url.Values{}
	form.Set("ssl_merchant_id", cfg.Credentials.MerchantID)
	form.Set("ssl_user_id", cfg.Credentials.UserID)
	form.Set("ssl_pin", cfg.Credentials.Secret)
	form.Set("ssl_transaction_type", req.TransactionType)
	form.Set("ssl_amount", entities.FormatMinorUnits(req.AmountMinorUnits))
	form.Set("ssl_transaction_currency", req.Currency)
	if req.RequestVaultStorage {
		// Ask the vendor to also vault the card so rebilling can reuse a
		// stored token instead of re-collecting card data.
		form.Set("ssl_get_token", "Y")
		form.Set("ssl_add_token", "Y")
	}
	if req.CustomerCode != "" {
		form.Set("ssl_customer_code", req.CustomerCode)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+convergeTokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return entities.TokenGrant{}, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return entities.TokenGrant{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.TokenGrant{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entities.TokenGrant{}, fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, snippet(body))
	}

	token, err := parseConvergeTokenResponse(body)
	if err != nil {
		return entities.TokenGrant{}, err
	}

	log.Printf("[converge][client] token issued merchant_id=%s token=%s", cfg.Credentials.MerchantID, entities.RedactToken(token))
	return entities.TokenGrant{
		AuthToken: token,
		ExpiresAt: time.Now().UTC().Add(convergeDefaultTokenTTL),
	}, nil
}

// parseConvergeTokenResponse handles the three body shapes the vendor is
// known to produce: a JSON object, a form-encoded k=v body, or the bare
// token as plain text.
func parseConvergeTokenResponse(body []byte) (string, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", errors.New("empty token response")
	}

	if json.Valid(body) {
		var parsed struct {
			Result        string `json:"result"`
			ResultMessage string `json:"result_message"`
			ErrorMessage  string `json:"errorMessage"`
			Token         string `json:"token"`
		}
		if err := json.Unmarshal(body, &parsed); err == nil {
			if parsed.Token != "" {
				return parsed.Token, nil
			}
			msg := parsed.ResultMessage
			if msg == "" {
				msg = parsed.ErrorMessage
			}
			return "", fmt.Errorf("vendor result=%q message=%q", parsed.Result, msg)
		}
	}

	if strings.Contains(trimmed, "=") {
		values, err := url.ParseQuery(trimmed)
		if err == nil {
			if token := values.Get("token"); token != "" {
				return token, nil
			}
			if msg := firstOf(values, "errorMessage", "ssl_result_message", "result_message"); msg != "" {
				return "", fmt.Errorf("vendor message=%q", msg)
			}
		}
		return "", fmt.Errorf("unparseable token response: %s", snippet(body))
	}

	// Legacy behavior: bare token text.
	if strings.ContainsAny(trimmed, " \n\t") {
		return "", fmt.Errorf("unparseable token response: %s", snippet(body))
	}
	return trimmed, nil
}

func firstOf(values url.Values, keys ...string) string {
	for _, k := range keys {
		if v := values.Get(k); v != "" {
			return v
		}
	}
	return ""
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
