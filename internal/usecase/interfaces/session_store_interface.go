package interfaces

import "clubpay/internal/domain/entities"

// ISessionStore holds live payment sessions for the duration of one purchase
// attempt. Sessions are process-local and are removed on finalization or
// expiry; there is no durable session state.
type ISessionStore interface {
	Put(session *entities.PaymentSession)
	Get(sessionID string) (*entities.PaymentSession, bool)
	Remove(sessionID string)
}
