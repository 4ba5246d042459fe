package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Session is the process-wide authenticated session shared by every editor
// instance: bearer token plus the identity it was issued to. It is populated
// on successful login, cleared on explicit logout or on any 401 response, and
// otherwise survives restarts.
type Session struct {
	Token    string `json:"adminToken"`
	UserID   string `json:"adminUserId"`
	Username string `json:"adminUsername"`
}

// Preferences are admin UI settings stored alongside the session but
// independent of the config store.
type Preferences struct {
	Language string `json:"adminLanguage"`
	Theme    string `json:"adminTheme"`
}

// SessionStore owns the session lifecycle. Editors never touch the backing
// storage directly; everything goes through this interface.
type SessionStore interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// FileSessionStore persists the session as a JSON file under fixed keys.
type FileSessionStore struct {
	mu   sync.Mutex
	path string
}

// NewFileSessionStore creates a session store backed by the given file path.
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

// Load reads the stored session. A missing file is an empty session, not an
// error.
func (s *FileSessionStore) Load() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// Corrupt session file; treat as logged out.
		return Session{}, nil
	}
	return sess, nil
}

// Save writes the session to disk.
func (s *FileSessionStore) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the stored session.
func (s *FileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MemorySessionStore keeps the session in memory only. Used in tests and
// anywhere persistence across restarts is not wanted.
type MemorySessionStore struct {
	mu   sync.Mutex
	sess Session
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Load() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess, nil
}

func (s *MemorySessionStore) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
	return nil
}

func (s *MemorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = Session{}
	return nil
}
