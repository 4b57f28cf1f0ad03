// Package session implements the gateway's session store: the in-memory map
// of authenticated users backed by durable local storage, so sessions survive
// a process restart until they are logged out or expire with the token.
package session

import (
	"sync"

	"github.com/ics-security/hrm-chat-gateway/internal/domain"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/repository"
	"github.com/ics-security/hrm-chat-gateway/pkg/logger"
)

// Store holds the live sessions. Reads are frequent (every request), writes
// happen only on login/logout, so a RWMutex is enough.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
	repo     repository.SessionRepository
	log      *logger.Logger
}

// NewStore builds the store and restores persisted sessions. A corrupted
// storage entry is discarded by the repository, an entry with a role outside
// the closed enumeration is dropped here; neither fails startup.
func NewStore(repo repository.SessionRepository, log *logger.Logger) (*Store, error) {
	s := &Store{
		sessions: make(map[string]*entity.Session),
		repo:     repo,
		log:      log,
	}
	if err := s.restore(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) restore() error {
	stored, err := s.repo.LoadAll()
	if err != nil {
		return err
	}
	for _, sess := range stored {
		if !sess.Valid() {
			// Malformed-but-parseable entry: treat like corruption and drop it.
			_ = s.repo.Delete(sess.ID)
			s.log.Warn().Str("session_id", sess.ID).Msg("discarding stored session with invalid role")
			continue
		}
		s.sessions[sess.ID] = sess
	}
	s.log.Info().Int("restored", len(s.sessions)).Msg("session store restored")
	return nil
}

// Login stores the session in memory and in durable storage. Subsequent
// reads, including after a restart, return the same session until Logout.
func (s *Store) Login(sess *entity.Session) error {
	if !sess.Valid() {
		return domain.ErrInvalidSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Save(sess); err != nil {
		return err
	}
	s.sessions[sess.ID] = sess
	return nil
}

// Logout clears both memory and durable storage. Logging out an unknown
// session is a no-op.
func (s *Store) Logout(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return s.repo.Delete(sessionID)
}

// Get returns the session or nil when absent.
func (s *Store) Get(sessionID string) *entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[sessionID]
}

// IsAuthenticated derived value: a non-nil session exists for the ID.
func (s *Store) IsAuthenticated(sessionID string) bool {
	return s.Get(sessionID) != nil
}
