// Package session persists the authentication token and workspace id between
// runs. The store is a pure accessor: it holds no policy about when either
// value is set or cleared.
package session

// Session is the persisted pair that determines whether protected views render.
type Session struct {
	Token    string `json:"token"`
	TenantID string `json:"tenant_id"`
}

// Store abstracts the storage medium for the session so call sites never care
// whether it is a file, memory, or something else.
type Store interface {
	// Token returns the persisted token, or "" when absent or unreadable.
	Token() string

	// TenantID returns the persisted workspace id, or "" when absent.
	TenantID() string

	SetToken(token string) error
	SetTenantID(id string) error

	ClearToken() error
	ClearTenantID() error

	// Clear removes both values.
	Clear() error
}
