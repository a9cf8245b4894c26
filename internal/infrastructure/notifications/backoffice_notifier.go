package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"clubpay/internal/domain/entities"
	"clubpay/internal/usecase/interfaces"
)

// BackofficeNotifier forwards approved purchases to the club back office,
// which owns receipt email and contract-document rendering. When no URL is
// configured the notifier is disabled and only logs.
type BackofficeNotifier struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.IReceiptNotifier = (*BackofficeNotifier)(nil)

func NewBackofficeNotifierFromEnv() *BackofficeNotifier {
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("BACKOFFICE_URL")), "/")
	if baseURL == "" {
		log.Printf("[notify][backoffice] BACKOFFICE_URL not set; receipt notifications disabled")
	}
	return &BackofficeNotifier{
		baseURL:    baseURL,
		apiKey:     os.Getenv("BACKOFFICE_API_KEY"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type receiptPayload struct {
	Event         string `json:"event"`
	SessionID     string `json:"session_id"`
	ClubID        string `json:"club_id"`
	MemberID      string `json:"member_id"`
	SKU           string `json:"sku"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	TransactionID string `json:"transaction_id"`
	Last4         string `json:"last4"`
	ContactEmail  string `json:"contact_email"`
	CreatedAt     string `json:"created_at"`
}

func (n *BackofficeNotifier) SendReceipt(ctx context.Context, record entities.PurchaseRecord) error {
	if n.baseURL == "" {
		log.Printf("[notify][backoffice] skipped (disabled) session_id=%s", record.SessionID)
		return nil
	}

	payload := receiptPayload{
		Event:         "purchase.approved",
		SessionID:     record.SessionID,
		ClubID:        record.ClubID,
		MemberID:      record.MemberID,
		SKU:           record.SKU,
		Amount:        entities.FormatMinorUnits(record.PriceMinorUnits),
		Currency:      record.Currency,
		TransactionID: record.PaymentResult.TransactionID,
		Last4:         record.PaymentResult.MaskedPAN,
		ContactEmail:  record.Contact.Email,
		CreatedAt:     record.CreatedAt.Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/internal/receipts", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("X-API-Key", n.apiKey)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backoffice returned status %d", resp.StatusCode)
	}

	log.Printf("[notify][backoffice] receipt sent session_id=%s club_id=%s", record.SessionID, record.ClubID)
	return nil
}
