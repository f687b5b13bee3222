package session

// MemStore is an in-memory Store for tests.
type MemStore struct {
	sess Session
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Token returns the stored token.
func (s *MemStore) Token() string { return s.sess.Token }

// TenantID returns the stored workspace id.
func (s *MemStore) TenantID() string { return s.sess.TenantID }

// SetToken stores the token.
func (s *MemStore) SetToken(token string) error {
	s.sess.Token = token
	return nil
}

// SetTenantID stores the workspace id.
func (s *MemStore) SetTenantID(id string) error {
	s.sess.TenantID = id
	return nil
}

// ClearToken removes the token.
func (s *MemStore) ClearToken() error {
	s.sess.Token = ""
	return nil
}

// ClearTenantID removes the workspace id.
func (s *MemStore) ClearTenantID() error {
	s.sess.TenantID = ""
	return nil
}

// Clear removes both values.
func (s *MemStore) Clear() error {
	s.sess = Session{}
	return nil
}
