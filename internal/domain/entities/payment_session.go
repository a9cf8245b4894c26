package entities

import (
	"strings"
	"sync"
	"time"
)

// Processor identifies which external card processor integration a club uses.
//
// The two integrations are structurally incompatible:
//   - paytrace: processor-hosted card fields embedded in the page; the page
//     receives a one-time card token and the server runs the sale call.
//   - converge: processor-hosted payment page shown in an overlay; the
//     processor reports the outcome asynchronously via a cross-window
//     message relayed to the session events endpoint.

type Processor string

const (
	ProcessorPayTrace Processor = "paytrace"
	ProcessorConverge Processor = "converge"
)

func (p Processor) Valid() bool {
	return p == ProcessorPayTrace || p == ProcessorConverge
}

// SessionStatus is the lifecycle of one payment attempt.
//
// token_issued    -> awaiting_result -> {approved | declined | cancelled |
//                                        errored | timed_out}
//
// Every status on the right-hand side is terminal. The first terminal
// transition wins; everything after it is a no-op.

type SessionStatus string

const (
	SessionStatusTokenIssued    SessionStatus = "token_issued"
	SessionStatusAwaitingResult SessionStatus = "awaiting_result"
	SessionStatusApproved       SessionStatus = "approved"
	SessionStatusDeclined       SessionStatus = "declined"
	SessionStatusCancelled      SessionStatus = "cancelled"
	SessionStatusErrored        SessionStatus = "errored"
	SessionStatusTimedOut       SessionStatus = "timed_out"
)

func (s SessionStatus) Terminal() bool {
	switch s {
	case SessionStatusApproved, SessionStatusDeclined, SessionStatusCancelled,
		SessionStatusErrored, SessionStatusTimedOut:
		return true
	}
	return false
}

// TokenRequest is what the session issuer sends to a processor's
// token-issuance endpoint.
type TokenRequest struct {
	AmountMinorUnits    int64
	Currency            string
	TransactionType     string
	CustomerCode        string
	RequestVaultStorage bool
}

// TokenGrant is the processor's answer: a short-lived, single-use
// authorization token. Tokens are never reusable across attempts; a retry
// always mints a new grant.
type TokenGrant struct {
	AuthToken string
	ExpiresAt time.Time
}

// PaymentSession is one bounded attempt to collect a payment, bound to one
// amount and one merchant. It lives in the in-memory session store only and
// is discarded after finalization or expiry.
//
// The unexported guard fields implement the claim-once state machine: the
// cross-window message channel, the safety timer and user cancel actions all
// race to reach a terminal state, and exactly one of them may win.
type PaymentSession struct {
	SessionID        string    `json:"session_id"`
	Processor        Processor `json:"processor"`
	ClubID           string    `json:"club_id"`
	SKU              string    `json:"sku,omitempty"`
	AmountMinorUnits int64     `json:"amount_minor_units"`
	Currency         string    `json:"currency"`
	CustomerCode     string    `json:"customer_code,omitempty"`
	AuthToken        string    `json:"-"`
	AllowedOrigins   []string  `json:"-"`
	IssuedAt         time.Time `json:"issued_at"`
	ExpiresAt        time.Time `json:"expires_at"`

	mu     sync.Mutex
	status SessionStatus
	result *CanonicalPaymentResult
	timer  *time.Timer
}

func NewPaymentSession(sessionID string, processor Processor, clubID string, amountMinorUnits int64, currency string, issuedAt, expiresAt time.Time) *PaymentSession {
	return &PaymentSession{
		SessionID:        sessionID,
		Processor:        processor,
		ClubID:           clubID,
		AmountMinorUnits: amountMinorUnits,
		Currency:         currency,
		IssuedAt:         issuedAt,
		ExpiresAt:        expiresAt,
		status:           SessionStatusTokenIssued,
	}
}

func (s *PaymentSession) Status() SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Result returns the canonical payment result claimed by the winning
// terminal transition, or nil while the session is still live.
func (s *PaymentSession) Result() *CanonicalPaymentResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// MarkAwaitingResult moves the session from token_issued to awaiting_result.
// It is idempotent for duplicate "opened" signals and refuses to resurrect a
// terminal session.
func (s *PaymentSession) MarkAwaitingResult() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.Terminal() {
		return false
	}
	s.status = SessionStatusAwaitingResult
	return true
}

// MarkTerminal claims the session's single terminal transition. The first
// caller wins and gets true; every later caller (late message, duplicate
// delivery, racing timer) gets false and must treat the call as a no-op.
// Winning the claim stops the safety timer.
func (s *PaymentSession) MarkTerminal(status SessionStatus, result *CanonicalPaymentResult) bool {
	if !status.Terminal() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.Terminal() {
		return false
	}
	s.status = status
	s.result = result
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	return true
}

// ArmTimeout starts the safety timer. If no terminal transition happens
// within d the callback runs (in its own goroutine) and is expected to claim
// the timed_out transition itself via MarkTerminal. Arming is a no-op when a
// timer is already running or the session is already terminal.
func (s *PaymentSession) ArmTimeout(d time.Duration, onFire func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.Terminal() || s.timer != nil {
		return false
	}
	s.timer = time.AfterFunc(d, onFire)
	return true
}

func (s *PaymentSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// OriginAllowed reports whether a cross-window message origin belongs to the
// processor domains configured for this session's club.
func (s *PaymentSession) OriginAllowed(origin string) bool {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		return false
	}
	for _, allowed := range s.AllowedOrigins {
		if strings.EqualFold(origin, strings.TrimRight(strings.TrimSpace(allowed), "/")) {
			return true
		}
	}
	return false
}

// RedactedToken is the only form of the auth token that may be logged.
func (s *PaymentSession) RedactedToken() string {
	return RedactToken(s.AuthToken)
}

func RedactToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
