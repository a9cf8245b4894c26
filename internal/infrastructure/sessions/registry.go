package sessions

import (
	"log"
	"sync"
	"time"

	"clubpay/internal/domain/entities"
	"clubpay/internal/usecase/interfaces"
)

const sweepInterval = time.Minute

// Registry is the process-local session store. One live PaymentSession per
// purchase attempt; entries leave the registry when the finalizer removes
// them or the janitor sweeps them past expiry.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entities.PaymentSession
	stop     chan struct{}
	stopOnce sync.Once
}

var _ interfaces.ISessionStore = (*Registry)(nil)

func NewRegistry() *Registry {
	r := &Registry{
		sessions: make(map[string]*entities.PaymentSession),
		stop:     make(chan struct{}),
	}
	go r.janitor()
	return r
}

func (r *Registry) Put(session *entities.PaymentSession) {
	if session == nil || session.SessionID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.SessionID] = session
}

func (r *Registry) Get(sessionID string) (*entities.PaymentSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[sessionID]
	return session, ok
}

func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// Close stops the janitor. Safe to call more than once.
func (r *Registry) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *Registry) janitor() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := r.sweepExpired(time.Now().UTC()); n > 0 {
				log.Printf("[sessions][registry] swept expired sessions count=%d", n)
			}
		case <-r.stop:
			return
		}
	}
}

func (r *Registry) sweepExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
