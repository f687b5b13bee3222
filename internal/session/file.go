package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/melmoskitchen/pantry/internal/errors"
)

// FileName is the session file name inside the pantry config directory.
const FileName = "session.json"

// FileStore persists the session as a JSON file with owner-only permissions.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() Session {
	var sess Session

	data, err := os.ReadFile(s.path)
	if err != nil {
		// Absent or unreadable both read as an empty session.
		return sess
	}

	_ = json.Unmarshal(data, &sess)
	return sess
}

func (s *FileStore) save(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.NewSessionWriteError(s.path, err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return errors.NewSessionWriteError(s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.NewSessionWriteError(s.path, err)
	}

	return nil
}

// Token returns the persisted token, or "" when absent.
func (s *FileStore) Token() string {
	return s.load().Token
}

// TenantID returns the persisted workspace id, or "" when absent.
func (s *FileStore) TenantID() string {
	return s.load().TenantID
}

// SetToken persists the token, keeping the workspace id untouched.
func (s *FileStore) SetToken(token string) error {
	sess := s.load()
	sess.Token = token
	return s.save(sess)
}

// SetTenantID persists the workspace id, keeping the token untouched.
func (s *FileStore) SetTenantID(id string) error {
	sess := s.load()
	sess.TenantID = id
	return s.save(sess)
}

// ClearToken removes the token, keeping the workspace id untouched.
func (s *FileStore) ClearToken() error {
	sess := s.load()
	sess.Token = ""
	return s.save(sess)
}

// ClearTenantID removes the workspace id, keeping the token untouched.
func (s *FileStore) ClearTenantID() error {
	sess := s.load()
	sess.TenantID = ""
	return s.save(sess)
}

// Clear removes the session file entirely.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.NewSessionWriteError(s.path, err)
	}
	return nil
}
