package repository

import "github.com/ics-security/hrm-chat-gateway/internal/domain/entity"

// SessionRepository is the durable side of the session store. Entries are
// keyed by a fixed namespace plus the session ID; values are the serialized
// session. Implementations must tolerate corrupted values: LoadAll discards
// anything that fails to parse instead of failing startup.
type SessionRepository interface {
	Save(session *entity.Session) error
	Delete(sessionID string) error
	// LoadAll returns every parseable stored session and silently drops
	// (and removes) corrupted entries.
	LoadAll() ([]*entity.Session, error)
}
