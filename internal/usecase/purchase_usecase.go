package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"clubpay/internal/domain/entities"
	"clubpay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPurchaseRequest = errors.New("invalid purchase request")
	ErrProcessorMismatch      = errors.New("payment payload processor does not match session")
	ErrMissingCardToken       = errors.New("missing card token")
	ErrResultNotReceived      = errors.New("payment result not yet received for session")
	ErrOfferingNotFound       = errors.New("package offering not found")
	ErrOfferingInactive       = errors.New("package offering not active")
	ErrAmountMismatch         = errors.New("charged session amount does not match catalog price")
	ErrPurchaseNotFound       = errors.New("purchase not found")
)

// IPurchaseUseCase is the finalizer: it turns a terminal payment outcome
// into at most one persisted purchase record per session.

type IPurchaseUseCase interface {
	FinalizePurchase(ctx context.Context, in FinalizePurchaseInput) (PurchaseOutcome, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.PurchaseRecord, error)
	ListByClubID(ctx context.Context, clubID string) ([]entities.PurchaseRecord, error)
}

// PaymentPayload is the tagged union carried on the purchase request:
// a one-time card token for the embedded tokenizer, or the
// already-processed outcome fields for the hosted overlay.
type PaymentPayload struct {
	Processor        entities.Processor
	Token            string
	AlreadyProcessed bool
	TransactionID    string
	ApprovalCode     string
	CardBrand        string
	CardMasked       string
	Expiry           string
}

type FinalizePurchaseInput struct {
	SessionID string
	ClubID    string
	MemberID  string
	Guest     bool
	SKU       string
	Contact   entities.ContactInfo
	Payment   PaymentPayload
}

// PurchaseOutcome is what the caller shows the customer. Record is non-nil
// only for an approved, persisted purchase. Duplicate marks a replayed
// finalize that returned the previously computed outcome.
type PurchaseOutcome struct {
	Result      entities.CanonicalPaymentResult
	Record      *entities.PurchaseRecord
	UserMessage string
	Duplicate   bool
}

type finalizeEntry struct {
	mu      sync.Mutex
	done    bool
	outcome PurchaseOutcome
}

type PurchaseUseCase struct {
	purchaseRepo  interfaces.IPurchaseRepository
	catalogRepo   interfaces.ICatalogRepository
	configRepo    interfaces.IClubConfigRepository
	cardProcessor interfaces.ICardProcessor
	store         interfaces.ISessionStore
	notifier      interfaces.IReceiptNotifier

	mu        sync.Mutex
	finalized map[string]*finalizeEntry
}

var _ IPurchaseUseCase = (*PurchaseUseCase)(nil)

func NewPurchaseUseCase(
	purchaseRepo interfaces.IPurchaseRepository,
	catalogRepo interfaces.ICatalogRepository,
	configRepo interfaces.IClubConfigRepository,
	cardProcessor interfaces.ICardProcessor,
	store interfaces.ISessionStore,
	notifier interfaces.IReceiptNotifier,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		purchaseRepo:  purchaseRepo,
		catalogRepo:   catalogRepo,
		configRepo:    configRepo,
		cardProcessor: cardProcessor,
		store:         store,
		notifier:      notifier,
		finalized:     make(map[string]*finalizeEntry),
	}
}

// FinalizePurchase computes and records the outcome for one session, at most
// once. A second call for the same session returns the previously computed
// outcome instead of re-charging or re-persisting; concurrent duplicates
// serialize on the per-session entry.
func (u *PurchaseUseCase) FinalizePurchase(ctx context.Context, in FinalizePurchaseInput) (PurchaseOutcome, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" || strings.TrimSpace(in.ClubID) == "" {
		return PurchaseOutcome{}, ErrInvalidPurchaseRequest
	}

	entry := u.entry(sessionID)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.done {
		log.Printf("[purchase][usecase] duplicate finalize session_id=%s returning prior outcome", sessionID)
		outcome := entry.outcome
		outcome.Duplicate = true
		return outcome, nil
	}

	outcome, err := u.finalize(ctx, sessionID, in)
	if err != nil {
		// Not a terminal outcome (validation failure, result not yet
		// received, persistence fault): leave the session retryable.
		return outcome, err
	}
	entry.outcome = outcome
	entry.done = true
	return outcome, nil
}

func (u *PurchaseUseCase) entry(sessionID string) *finalizeEntry {
	u.mu.Lock()
	defer u.mu.Unlock()
	e, ok := u.finalized[sessionID]
	if !ok {
		e = &finalizeEntry{}
		u.finalized[sessionID] = e
	}
	return e
}

func (u *PurchaseUseCase) finalize(ctx context.Context, sessionID string, in FinalizePurchaseInput) (PurchaseOutcome, error) {
	log.Printf("[purchase][usecase] finalize start session_id=%s club_id=%s sku=%s processor=%s", sessionID, in.ClubID, in.SKU, in.Payment.Processor)

	session, ok := u.store.Get(sessionID)
	if !ok {
		return PurchaseOutcome{}, ErrSessionNotFound
	}
	if session.ClubID != strings.TrimSpace(in.ClubID) {
		return PurchaseOutcome{}, ErrInvalidPurchaseRequest
	}
	if in.Payment.Processor != session.Processor {
		return PurchaseOutcome{}, ErrProcessorMismatch
	}

	price, currency, err := u.resolvePrice(ctx, session, in)
	if err != nil {
		return PurchaseOutcome{}, err
	}

	var result entities.CanonicalPaymentResult
	switch session.Processor {
	case entities.ProcessorPayTrace:
		result, err = u.chargeTokenizer(ctx, session, in, price, currency)
		if err != nil {
			return PurchaseOutcome{}, err
		}
	case entities.ProcessorConverge:
		// The overlay outcome is authoritative only once the session has
		// consumed its origin-checked result message. A purchase request
		// claiming "already processed" cannot substitute for it.
		if !session.Status().Terminal() {
			return PurchaseOutcome{}, ErrResultNotReceived
		}
		stored := session.Result()
		if stored == nil {
			return PurchaseOutcome{}, ErrResultNotReceived
		}
		result = *stored
		if in.Payment.AlreadyProcessed && in.Payment.TransactionID != "" && result.TransactionID != "" &&
			in.Payment.TransactionID != result.TransactionID {
			log.Printf("[purchase][usecase] relayed transaction id mismatch session_id=%s relayed=%s stored=%s", sessionID, in.Payment.TransactionID, result.TransactionID)
			result = entities.CanonicalPaymentResult{
				Status:           entities.ResultStatusErrored,
				DeclineReason:    "conflicting processor result",
				RawPayloadDigest: result.RawPayloadDigest,
			}
			session.MarkTerminal(entities.SessionStatusErrored, &result)
		}
	default:
		return PurchaseOutcome{}, ErrProcessorMismatch
	}

	outcome := PurchaseOutcome{Result: result, UserMessage: result.UserMessage()}
	if !result.Approved() {
		log.Printf("[purchase][usecase] finalize non-approved session_id=%s status=%s", sessionID, result.Status)
		u.store.Remove(sessionID)
		return outcome, nil
	}

	record := entities.PurchaseRecord{
		RecordID:        uuid.NewString(),
		SessionID:       sessionID,
		ClubID:          session.ClubID,
		MemberID:        strings.TrimSpace(in.MemberID),
		Guest:           in.Guest,
		SKU:             strings.TrimSpace(in.SKU),
		PriceMinorUnits: price,
		Currency:        currency,
		PaymentResult:   result,
		Contact:         in.Contact,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := u.purchaseRepo.Create(ctx, record)
	if err != nil {
		log.Printf("[purchase][usecase] purchase persist failed session_id=%s err=%v", sessionID, err)
		return PurchaseOutcome{}, err
	}
	outcome.Record = &created
	u.store.Remove(sessionID)

	if u.notifier != nil {
		// Receipt failure never rolls back the record; the purchase is the
		// source of truth.
		if err := u.notifier.SendReceipt(ctx, created); err != nil {
			log.Printf("[purchase][usecase] receipt notification failed session_id=%s err=%v", sessionID, err)
		}
	}

	log.Printf("[purchase][usecase] finalize success session_id=%s record_id=%s price_minor=%d last4=%s",
		sessionID, created.RecordID, created.PriceMinorUnits, created.PaymentResult.MaskedPAN)
	return outcome, nil
}

// resolvePrice enforces the catalog as the source of truth for the charge
// amount when a SKU is named; otherwise the session amount stands. For the
// hosted overlay the money already moved at the session amount, so a catalog
// price that disagrees is a conflict, never a silent repricing of the record.
func (u *PurchaseUseCase) resolvePrice(ctx context.Context, session *entities.PaymentSession, in FinalizePurchaseInput) (int64, string, error) {
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		sku = session.SKU
	}
	if sku == "" || u.catalogRepo == nil {
		return session.AmountMinorUnits, session.Currency, nil
	}

	offering, err := u.catalogRepo.GetOffering(ctx, session.ClubID, sku)
	if err != nil {
		return 0, "", err
	}
	if offering.SKU == "" {
		return 0, "", ErrOfferingNotFound
	}
	if !offering.Active {
		return 0, "", ErrOfferingInactive
	}
	currency := offering.Currency
	if currency == "" {
		currency = session.Currency
	}

	if session.Processor == entities.ProcessorConverge {
		if offering.PriceMinorUnits != session.AmountMinorUnits {
			log.Printf("[purchase][usecase] catalog price conflicts with charged session amount session_id=%s session_minor=%d catalog_minor=%d",
				session.SessionID, session.AmountMinorUnits, offering.PriceMinorUnits)
			return 0, "", ErrAmountMismatch
		}
		return session.AmountMinorUnits, session.Currency, nil
	}

	// Tokenizer charge happens here, so the catalog prices it.
	if offering.PriceMinorUnits != session.AmountMinorUnits {
		log.Printf("[purchase][usecase] session amount overridden by catalog session_id=%s session_minor=%d catalog_minor=%d",
			session.SessionID, session.AmountMinorUnits, offering.PriceMinorUnits)
	}
	return offering.PriceMinorUnits, currency, nil
}

// chargeTokenizer runs the sale call for the embedded-tokenizer flow. A
// transport failure is converted into an errored canonical result here:
// nothing past this boundary ever sees a raw processor exception, and an
// ambiguous fault is never assumed approved.
func (u *PurchaseUseCase) chargeTokenizer(ctx context.Context, session *entities.PaymentSession, in FinalizePurchaseInput, price int64, currency string) (entities.CanonicalPaymentResult, error) {
	// A retry after a persistence fault must not re-spend the single-use
	// token: the claimed result stands.
	if session.Status().Terminal() {
		if stored := session.Result(); stored != nil {
			return *stored, nil
		}
	}

	token := strings.TrimSpace(in.Payment.Token)
	if token == "" {
		return entities.CanonicalPaymentResult{}, ErrMissingCardToken
	}

	cfg, err := u.configRepo.GetByClubID(ctx, session.ClubID)
	if err != nil {
		return entities.CanonicalPaymentResult{}, err
	}
	if cfg.ClubID == "" {
		return entities.CanonicalPaymentResult{}, ErrClubConfigNotFound
	}

	raw, err := u.cardProcessor.ChargeToken(ctx, cfg, token, price, currency)
	var result entities.CanonicalPaymentResult
	if err != nil {
		log.Printf("[purchase][usecase] sale call failed session_id=%s err=%v", session.SessionID, err)
		result = entities.CanonicalPaymentResult{
			Status:        entities.ResultStatusErrored,
			DeclineReason: "payment processor unavailable",
		}
	} else {
		result = NormalizeProcessorResponse(entities.ProcessorPayTrace, raw)
	}
	session.MarkTerminal(result.SessionStatus(), &result)
	return result, nil
}

// ListByClubID returns every purchase recorded for a club, newest data as
// the repository yields it.
func (u *PurchaseUseCase) ListByClubID(ctx context.Context, clubID string) ([]entities.PurchaseRecord, error) {
	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return nil, ErrInvalidPurchaseRequest
	}
	records, err := u.purchaseRepo.ListByClubID(ctx, clubID)
	if err != nil {
		log.Printf("[purchase][usecase] list failed club_id=%s err=%v", clubID, err)
		return nil, err
	}
	return records, nil
}

func (u *PurchaseUseCase) GetBySessionID(ctx context.Context, sessionID string) (entities.PurchaseRecord, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.PurchaseRecord{}, ErrInvalidPurchaseRequest
	}
	record, err := u.purchaseRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return entities.PurchaseRecord{}, err
	}
	if record.SessionID == "" {
		return entities.PurchaseRecord{}, ErrPurchaseNotFound
	}
	return record, nil
}
