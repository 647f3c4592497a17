package session

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

// Store is the persisted session state read before every request. Clear is
// idempotent; the transport may call it more than once when several in-flight
// requests hit a 401 at the same time.
type Store interface {
	Token() string
	UserID() string
	Clear()
}

// MemoryStore keeps the session in process memory. Used by tests and by the
// stateless one-shot CLI when no session file is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	token  string
	userID string
}

func NewMemoryStore(token, userID string) *MemoryStore {
	return &MemoryStore{token: token, userID: userID}
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = ""
}

// Set replaces the stored credentials, e.g. after a login.
func (s *MemoryStore) Set(token, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = userID
}

type fileState struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// FileStore persists the session as a small JSON file so the CLI keeps its
// login across invocations. Reads are served from memory; Clear and Set
// rewrite the file.
type FileStore struct {
	mu    sync.RWMutex
	path  string
	state fileState
}

func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path}
	b, err := os.ReadFile(path)
	if err != nil {
		return s // missing file means logged out
	}
	if err := json.Unmarshal(b, &s.state); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("session file unreadable, starting logged out")
	}
	return s
}

func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

func (s *FileStore) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UserID
}

func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fileState{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		log.Warn().Str("path", s.path).Err(err).Msg("failed to remove session file")
	}
}

func (s *FileStore) Set(token, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fileState{Token: token, UserID: userID}
	b, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}
