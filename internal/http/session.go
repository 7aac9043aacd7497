package http

import (
	"net/http"
	"sync"

	"github.com/MaysJava/HappyShop/internal/trolley"
)

const defaultSessionID = "default"

// SessionRegistry hands out one trolley per session. The registry itself is
// safe for concurrent use; each trolley stays single-owner, one session at a
// time.
type SessionRegistry struct {
	mu       sync.Mutex
	trolleys map[string]*trolley.Trolley
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		trolleys: make(map[string]*trolley.Trolley),
	}
}

// Trolley returns the session's trolley, creating it on first use.
func (r *SessionRegistry) Trolley(sessionID string) *trolley.Trolley {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trolleys[sessionID]
	if !ok {
		t = trolley.New()
		r.trolleys[sessionID] = t
	}
	return t
}

func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	return defaultSessionID
}
