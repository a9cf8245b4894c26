package processors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"clubpay/internal/domain/entities"
	"clubpay/internal/usecase/interfaces"
)

var ErrPayTraceBaseURLMissing = errors.New("missing paytrace vendor base url")

const (
	paytraceClientKeyPath = "/v1/payment_fields/token/create"
	paytraceSalePath      = "/v1/transactions/sale/pt_protect"
	paytraceKeyTTL        = 10 * time.Minute
)

// PayTraceClient talks to the embedded-tokenizer processor over its JSON
// API. Issuance mints the client key the hosted field-set is mounted with;
// the sale call spends the one-time card token the field-set produced.
type PayTraceClient struct {
	httpClient *http.Client
}

var (
	_ interfaces.ITokenIssuer   = (*PayTraceClient)(nil)
	_ interfaces.ICardProcessor = (*PayTraceClient)(nil)
)

func NewPayTraceClient() *PayTraceClient {
	return &PayTraceClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *PayTraceClient) IssueToken(ctx context.Context, cfg entities.ClubPaymentConfig, req entities.TokenRequest) (entities.TokenGrant, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.VendorBaseURL), "/")
	if baseURL == "" {
		return entities.TokenGrant{}, ErrPayTraceBaseURLMissing
	}

	payload := map[string]any{
		"merchant_id": cfg.Credentials.MerchantID,
		"amount":      entities.FormatMinorUnits(req.AmountMinorUnits),
		"currency":    req.Currency,
		"single_use":  true,
	}
	if req.CustomerCode != "" {
		payload["customer_reference"] = req.CustomerCode
	}

	body, err := c.postJSON(ctx, cfg, baseURL+paytraceClientKeyPath, payload)
	if err != nil {
		return entities.TokenGrant{}, err
	}

	var parsed struct {
		ClientKey string `json:"clientKey"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return entities.TokenGrant{}, fmt.Errorf("unparseable client key response: %s", snippet(body))
	}
	if parsed.ClientKey == "" {
		return entities.TokenGrant{}, fmt.Errorf("client key rejected: %s", firstNonBlank(parsed.Message, snippet(body)))
	}

	log.Printf("[paytrace][client] client key issued merchant_id=%s key=%s", cfg.Credentials.MerchantID, entities.RedactToken(parsed.ClientKey))
	return entities.TokenGrant{
		AuthToken: parsed.ClientKey,
		ExpiresAt: time.Now().UTC().Add(paytraceKeyTTL),
	}, nil
}

// ChargeToken runs the sale call. Vendor-level declines come back inside the
// payload with a 2xx or 4xx status; both are handed to the normalizer
// untouched. Only transport and unreadable-body failures surface as errors.
func (c *PayTraceClient) ChargeToken(ctx context.Context, cfg entities.ClubPaymentConfig, token string, amountMinorUnits int64, currency string) (json.RawMessage, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.VendorBaseURL), "/")
	if baseURL == "" {
		return nil, ErrPayTraceBaseURLMissing
	}

	payload := map[string]any{
		"merchant_id": cfg.Credentials.MerchantID,
		"hpf_token":   token,
		"amount":      entities.FormatMinorUnits(amountMinorUnits),
		"currency":    currency,
	}

	body, err := c.postJSON(ctx, cfg, baseURL+paytraceSalePath, payload)
	if err != nil {
		return nil, err
	}
	log.Printf("[paytrace][client] sale response received merchant_id=%s payload_len=%d", cfg.Credentials.MerchantID, len(body))
	return body, nil
}

func (c *PayTraceClient) postJSON(ctx context.Context, cfg entities.ClubPaymentConfig, endpoint string, payload map[string]any) (json.RawMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(cfg.Credentials.UserID, cfg.Credentials.Secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("endpoint returned status %d with non-json body: %s", resp.StatusCode, snippet(body))
	}
	return body, nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
