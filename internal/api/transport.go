package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/melmoskitchen/pantry/internal/session"
)

// SessionTransport injects the persisted session into every outbound request:
// the raw token as the Authorization header (the backend expects no "Bearer "
// scheme prefix) and the workspace id as X-Tenant-ID. Requests pass through
// unchanged when neither value is persisted.
//
// There is no response side: a 401 or 403 is returned to the caller like any
// other status so each view keeps its own error messaging.
type SessionTransport struct {
	store session.Store
	next  http.RoundTripper
}

// NewSessionTransport wraps next with session header injection.
// A nil next falls back to http.DefaultTransport.
func NewSessionTransport(store session.Store, next http.RoundTripper) *SessionTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &SessionTransport{store: store, next: next}
}

// RoundTrip implements http.RoundTripper.
func (t *SessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request must not be mutated.
	clone := req.Clone(req.Context())

	if token := t.store.Token(); token != "" {
		clone.Header.Set("Authorization", token)
	}
	if id := t.store.TenantID(); id != "" {
		clone.Header.Set("X-Tenant-ID", id)
	}
	clone.Header.Set("X-Request-ID", uuid.NewString())

	return t.next.RoundTrip(clone)
}
