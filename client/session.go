package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/victorucama-create/nexasuite-erp/users"
)

// Session is the client-held bundle of credentials and identity. It is
// created on login, replaced wholesale on refresh, and destroyed on logout
// or when a refresh attempt fails for good.
type Session struct {
	AccessToken      string      `json:"accessToken"`
	RefreshToken     string      `json:"refreshToken"`
	AccessExpiresAt  time.Time   `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time   `json:"refreshExpiresAt"`
	User             *users.User `json:"user,omitempty"`
}

// CanRefresh reports whether the session still holds an unexpired refresh
// token. Once this is false the session is beyond recovery.
func (s *Session) CanRefresh(now time.Time) bool {
	if s == nil || s.RefreshToken == "" {
		return false
	}
	return s.RefreshExpiresAt.IsZero() || now.Before(s.RefreshExpiresAt)
}

// tokenExpiry reads the exp claim without verifying the signature. The
// client never trusts the claim for authorisation, only for bookkeeping;
// the server re-verifies every token it receives.
func tokenExpiry(tokenString string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// SessionStore persists a session across process restarts
type SessionStore interface {
	Load() (*Session, error)
	Save(session *Session) error
	Clear() error
}

// MemorySessionStore keeps the session in process memory only
type MemorySessionStore struct {
	lock    sync.Mutex
	session *Session
}

var _ SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Load() (*Session, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.session, nil
}

func (s *MemorySessionStore) Save(session *Session) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.session = session
	return nil
}

func (s *MemorySessionStore) Clear() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.session = nil
	return nil
}

// FileSessionStore persists the session as a JSON document, flushed on
// every mutation so a crash never loses a live session.
type FileSessionStore struct {
	path string
	lock sync.Mutex
}

var _ SessionStore = (*FileSessionStore)(nil)

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

func (s *FileSessionStore) Load() (*Session, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[FileSessionStore Load] failed to read session file")
	}

	session := &Session{}
	if err := json.Unmarshal(raw, session); err != nil {
		// A corrupt session file is treated as no session
		return nil, nil
	}
	return session, nil
}

func (s *FileSessionStore) Save(session *Session) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	raw, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[FileSessionStore Save] failed to marshal session")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileSessionStore Save] failed to create session directory")
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "[FileSessionStore Save] failed to write session file")
	}
	return nil
}

func (s *FileSessionStore) Clear() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileSessionStore Clear] failed to remove session file")
	}
	return nil
}
