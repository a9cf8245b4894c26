package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"clubpay/internal/domain/entities"
	"clubpay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidClubID         = errors.New("invalid club_id")
	ErrClubConfigNotFound    = errors.New("club payment configuration not found")
	ErrIncompleteCredentials = errors.New("club merchant credentials incomplete")
	ErrUnsupportedProcessor  = errors.New("unsupported processor")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidCurrency       = errors.New("invalid currency")
	ErrSessionIssuance       = errors.New("session issuance failed")
	ErrSessionNotFound       = errors.New("payment session not found")
	ErrSessionExpired        = errors.New("payment session expired")
)

const (
	// overlayMarker tags cross-window messages relayed from the hosted
	// overlay. Messages without it are discarded.
	overlayMarker = "converge-lightbox"

	defaultResultTimeout   = 120 * time.Second
	defaultSessionTTL      = 15 * time.Minute
	defaultTransactionType = "ccsale"
)

// ISessionUseCase covers session issuance and the asynchronous callback
// protocol for both processor integrations.

type ISessionUseCase interface {
	IssueSession(ctx context.Context, in IssueSessionInput) (*entities.PaymentSession, error)
	GetSession(ctx context.Context, sessionID string) (*entities.PaymentSession, error)
	HandleSessionEvent(ctx context.Context, sessionID, origin string, event json.RawMessage) (SessionEventOutcome, error)
}

type IssueSessionInput struct {
	ClubID          string
	Amount          float64
	Currency        string
	TransactionType string
	SKU             string
	CustomerCode    string
}

// SessionEventOutcome reports what an incoming event did to the session.
// Accepted is false for everything that must be a no-op: foreign origins,
// missing markers, ready pings, benign payloads and late duplicates.
type SessionEventOutcome struct {
	Accepted bool
	Status   entities.SessionStatus
}

type SessionUseCase struct {
	configRepo  interfaces.IClubConfigRepository
	catalogRepo interfaces.ICatalogRepository
	issuers     map[entities.Processor]interfaces.ITokenIssuer
	store       interfaces.ISessionStore

	resultTimeout time.Duration
	sessionTTL    time.Duration
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(configRepo interfaces.IClubConfigRepository, catalogRepo interfaces.ICatalogRepository, issuers map[entities.Processor]interfaces.ITokenIssuer, store interfaces.ISessionStore, resultTimeout time.Duration) *SessionUseCase {
	if resultTimeout <= 0 {
		resultTimeout = defaultResultTimeout
	}
	return &SessionUseCase{
		configRepo:    configRepo,
		catalogRepo:   catalogRepo,
		issuers:       issuers,
		store:         store,
		resultTimeout: resultTimeout,
		sessionTTL:    defaultSessionTTL,
	}
}

// IssueSession resolves the club's processor and credentials, validates the
// amount, and mints a fresh single-use authorization token. A failure is
// retryable only by issuing a brand-new session.
func (u *SessionUseCase) IssueSession(ctx context.Context, in IssueSessionInput) (*entities.PaymentSession, error) {
	clubID := strings.TrimSpace(in.ClubID)
	if clubID == "" {
		return nil, ErrInvalidClubID
	}
	log.Printf("[session][usecase] issue start club_id=%s amount=%.2f currency=%s sku=%s", clubID, in.Amount, in.Currency, in.SKU)

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "USD"
	}
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}

	// When a SKU is named the catalog prices the session, never the client.
	// The overlay processor charges the session amount as-is, so a
	// client-chosen amount would let the charge and the offering diverge.
	var minorUnits int64
	sku := strings.TrimSpace(in.SKU)
	if sku != "" && u.catalogRepo != nil {
		offering, err := u.catalogRepo.GetOffering(ctx, clubID, sku)
		if err != nil {
			log.Printf("[session][usecase] offering lookup failed club_id=%s sku=%s err=%v", clubID, sku, err)
			return nil, err
		}
		if offering.SKU == "" {
			log.Printf("[session][usecase] offering not found club_id=%s sku=%s", clubID, sku)
			return nil, ErrOfferingNotFound
		}
		if !offering.Active {
			log.Printf("[session][usecase] offering inactive club_id=%s sku=%s", clubID, sku)
			return nil, ErrOfferingInactive
		}
		minorUnits = offering.PriceMinorUnits
		if offering.Currency != "" {
			currency = offering.Currency
		}
		if requested, reqErr := entities.MinorUnitsFromFloat(in.Amount); reqErr == nil && requested != minorUnits {
			log.Printf("[session][usecase] requested amount ignored in favor of catalog club_id=%s sku=%s requested_minor=%d catalog_minor=%d", clubID, sku, requested, minorUnits)
		}
	} else {
		var err error
		minorUnits, err = entities.MinorUnitsFromFloat(in.Amount)
		if err != nil {
			log.Printf("[session][usecase] rejected amount club_id=%s amount=%v", clubID, in.Amount)
			return nil, ErrInvalidAmount
		}
	}

	cfg, err := u.configRepo.GetByClubID(ctx, clubID)
	if err != nil {
		log.Printf("[session][usecase] club config lookup failed club_id=%s err=%v", clubID, err)
		return nil, err
	}
	if cfg.ClubID == "" {
		log.Printf("[session][usecase] club config not found club_id=%s", clubID)
		return nil, ErrClubConfigNotFound
	}
	if !cfg.Credentials.Complete() {
		// Deployment defect: never retried, never forwarded to the issuer.
		log.Printf("[session][usecase] incomplete merchant credentials club_id=%s processor=%s", clubID, cfg.Processor)
		return nil, ErrIncompleteCredentials
	}

	issuer, ok := u.issuers[cfg.Processor]
	if !ok {
		log.Printf("[session][usecase] no issuer wired club_id=%s processor=%s", clubID, cfg.Processor)
		return nil, ErrUnsupportedProcessor
	}

	transactionType := strings.TrimSpace(in.TransactionType)
	if transactionType == "" {
		transactionType = defaultTransactionType
	}

	grant, err := issuer.IssueToken(ctx, cfg, entities.TokenRequest{
		AmountMinorUnits:    minorUnits,
		Currency:            currency,
		TransactionType:     transactionType,
		CustomerCode:        strings.TrimSpace(in.CustomerCode),
		RequestVaultStorage: true,
	})
	if err != nil {
		log.Printf("[session][usecase] token issuance failed club_id=%s processor=%s err=%v", clubID, cfg.Processor, err)
		return nil, fmt.Errorf("%w: %v", ErrSessionIssuance, err)
	}

	now := time.Now().UTC()
	expiresAt := grant.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = now.Add(u.sessionTTL)
	}

	session := entities.NewPaymentSession(uuid.NewString(), cfg.Processor, clubID, minorUnits, currency, now, expiresAt)
	session.SKU = strings.TrimSpace(in.SKU)
	session.CustomerCode = strings.TrimSpace(in.CustomerCode)
	session.AuthToken = grant.AuthToken
	session.AllowedOrigins = cfg.AllowedOrigins

	u.store.Put(session)
	log.Printf("[session][usecase] issue success session_id=%s club_id=%s processor=%s token=%s expires_at=%s",
		session.SessionID, clubID, cfg.Processor, session.RedactedToken(), expiresAt.Format(time.RFC3339))
	return session, nil
}

func (u *SessionUseCase) GetSession(_ context.Context, sessionID string) (*entities.PaymentSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	session, ok := u.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// sessionEvent is the envelope relayed by the hosting page from either
// integration. Overlay results arrive as cross-window messages tagged with
// the processor marker; tokenizer outcomes arrive as named events.
type sessionEvent struct {
	Source    string          `json:"source"`
	Ready     bool            `json:"ready"`
	Opened    bool            `json:"opened"`
	Cancelled bool            `json:"cancelled"`
	Errored   bool            `json:"errored"`
	Error     string          `json:"error"`
	Response  json.RawMessage `json:"response"`
	Event     string          `json:"event"`
	Message   string          `json:"message"`
}

// HandleSessionEvent applies one relayed client event to a session.
//
// Overlay protocol:
//  1. events from origins outside the club's processor allow-list never
//     cause a state transition
//  2. events without the processor marker are discarded
//  3. ready pings are not outcomes
//  4. exactly one result-bearing event is consumed per session; later ones
//     are no-ops
//  5. events carrying none of cancelled/errored/response are silently
//     ignored
func (u *SessionUseCase) HandleSessionEvent(_ context.Context, sessionID, origin string, raw json.RawMessage) (SessionEventOutcome, error) {
	sessionID = strings.TrimSpace(sessionID)
	session, ok := u.store.Get(sessionID)
	if !ok {
		return SessionEventOutcome{}, ErrSessionNotFound
	}
	if session.Expired(time.Now().UTC()) && !session.Status().Terminal() {
		return SessionEventOutcome{}, ErrSessionExpired
	}

	var event sessionEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		log.Printf("[session][usecase] unparseable event dropped session_id=%s err=%v", sessionID, err)
		return u.ignored(session), nil
	}

	switch session.Processor {
	case entities.ProcessorConverge:
		return u.handleOverlayEvent(session, origin, event), nil
	case entities.ProcessorPayTrace:
		return u.handleTokenizerEvent(session, event), nil
	default:
		return u.ignored(session), nil
	}
}

func (u *SessionUseCase) handleOverlayEvent(session *entities.PaymentSession, origin string, event sessionEvent) SessionEventOutcome {
	if !session.OriginAllowed(origin) {
		log.Printf("[session][usecase] overlay event from unexpected origin dropped session_id=%s origin=%q", session.SessionID, origin)
		return u.ignored(session)
	}
	if event.Source != overlayMarker {
		log.Printf("[session][usecase] unmarked overlay event dropped session_id=%s source=%q", session.SessionID, event.Source)
		return u.ignored(session)
	}
	if event.Ready {
		// Initialization ping, not a result.
		return u.ignored(session)
	}
	if event.Opened {
		accepted := session.MarkAwaitingResult()
		if accepted {
			u.armSupervisor(session)
			log.Printf("[session][usecase] overlay opened session_id=%s timeout=%s", session.SessionID, u.resultTimeout)
		}
		return SessionEventOutcome{Accepted: accepted, Status: session.Status()}
	}

	switch {
	case event.Cancelled:
		return u.claimTerminal(session, &entities.CanonicalPaymentResult{Status: entities.ResultStatusCancelled})
	case event.Errored:
		return u.claimTerminal(session, &entities.CanonicalPaymentResult{
			Status:        entities.ResultStatusErrored,
			DeclineReason: strings.TrimSpace(event.Error),
		})
	case len(event.Response) > 0:
		result := NormalizeProcessorResponse(entities.ProcessorConverge, event.Response)
		return u.claimTerminal(session, &result)
	default:
		// Benign message with no usable outcome field.
		return u.ignored(session)
	}
}

// handleTokenizerEvent covers the embedded field-set outcomes the page
// relays. A validation failure keeps the session live for a resubmit; a
// form or script-load error ends the attempt (retry is a page reload with a
// new session).
func (u *SessionUseCase) handleTokenizerEvent(session *entities.PaymentSession, event sessionEvent) SessionEventOutcome {
	switch event.Event {
	case "validation_failed":
		log.Printf("[session][usecase] tokenizer validation failed session_id=%s message=%q", session.SessionID, event.Message)
		return SessionEventOutcome{Accepted: true, Status: session.Status()}
	case "form_error", "script_load_failed":
		return u.claimTerminal(session, &entities.CanonicalPaymentResult{
			Status:        entities.ResultStatusErrored,
			DeclineReason: firstNonEmpty(event.Message, "payment form failed to load; reload the page to retry"),
		})
	default:
		return u.ignored(session)
	}
}

func (u *SessionUseCase) claimTerminal(session *entities.PaymentSession, result *entities.CanonicalPaymentResult) SessionEventOutcome {
	won := session.MarkTerminal(result.SessionStatus(), result)
	if won {
		log.Printf("[session][usecase] terminal transition session_id=%s status=%s", session.SessionID, session.Status())
	} else {
		log.Printf("[session][usecase] duplicate terminal event ignored session_id=%s status=%s", session.SessionID, session.Status())
	}
	return SessionEventOutcome{Accepted: won, Status: session.Status()}
}

func (u *SessionUseCase) ignored(session *entities.PaymentSession) SessionEventOutcome {
	return SessionEventOutcome{Accepted: false, Status: session.Status()}
}

// armSupervisor starts the safety timer for an opened overlay. If no
// terminal message arrives in time the session times out: the purchase must
// not be recorded and the attempt is released back to "ready to retry". A
// race with a late message resolves by first terminal transition wins.
func (u *SessionUseCase) armSupervisor(session *entities.PaymentSession) {
	session.ArmTimeout(u.resultTimeout, func() {
		timedOut := session.MarkTerminal(entities.SessionStatusTimedOut, &entities.CanonicalPaymentResult{
			Status:        entities.ResultStatusTimedOut,
			DeclineReason: "no result received before timeout",
		})
		if timedOut {
			log.Printf("[session][usecase] session timed out session_id=%s after=%s", session.SessionID, u.resultTimeout)
		}
	})
}
