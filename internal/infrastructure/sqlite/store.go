// Package sqlite provides the gateway's durable local storage: the persisted
// sessions and the audit trail, both in a single SQLite file.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/repository"
	"github.com/ics-security/hrm-chat-gateway/pkg/logger"
)

// sessionKeyPrefix namespaces the stored session entries, mirroring the
// application-specific storage key the web client used.
const sessionKeyPrefix = "hrm_user:"

// Compile-time interface checks.
var (
	_ repository.SessionRepository = (*Store)(nil)
	_ repository.AuditRepository   = (*Store)(nil)
)

// Store is the SQLite-backed storage.
type Store struct {
	db  *sql.DB
	log *logger.Logger
}

// New opens (or creates) the database file and bootstraps the schema.
func New(dbPath string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// WAL keeps the infrequent writers (login/logout/audit) from blocking reads.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS sessions (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp INTEGER NOT NULL,
		user TEXT NOT NULL,
		user_id INTEGER NOT NULL,
		action TEXT NOT NULL,
		resource TEXT NOT NULL,
		details TEXT NOT NULL,
		ip_address TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_audit_timestamp ON audit_log(timestamp);
	CREATE INDEX IF NOT EXISTS idx_audit_action ON audit_log(action);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ── SessionRepository ─────────────────────────────────────────────────────────

// Save upserts the serialized session under its namespaced key.
func (s *Store) Save(session *entity.Session) error {
	value, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO sessions (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		sessionKeyPrefix+session.ID, string(value), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Delete removes the stored session. Missing rows are not an error.
func (s *Store) Delete(sessionID string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE key = ?`, sessionKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// LoadAll returns every parseable stored session. A value that fails to
// parse is deleted and skipped so corruption never fails startup.
func (s *Store) LoadAll() ([]*entity.Session, error) {
	rows, err := s.db.Query(`SELECT key, value FROM sessions`)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	defer rows.Close()

	var (
		sessions  []*entity.Session
		corrupted []string
	)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		var sess entity.Session
		if err := json.Unmarshal([]byte(value), &sess); err != nil {
			s.log.Warn().Str("key", key).Err(err).Msg("discarding corrupted session entry")
			corrupted = append(corrupted, key)
			continue
		}
		sessions = append(sessions, &sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	for _, key := range corrupted {
		if _, err := s.db.Exec(`DELETE FROM sessions WHERE key = ?`, key); err != nil {
			s.log.Error().Str("key", key).Err(err).Msg("removing corrupted session entry failed")
		}
	}
	return sessions, nil
}

// ── AuditRepository ───────────────────────────────────────────────────────────

// Record appends one audit entry.
func (s *Store) Record(entry *entity.AuditEntry) error {
	res, err := s.db.Exec(`
		INSERT INTO audit_log (timestamp, user, user_id, action, resource, details, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.Timestamp.Unix(), entry.User, entry.UserID, entry.Action, entry.Resource, entry.Details, entry.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

// List returns entries newest first, filtered by action when set. Free-text
// search is applied by the use case on the returned candidates.
func (s *Store) List(filter repository.AuditFilter) ([]*entity.AuditEntry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}

	query := `SELECT id, timestamp, user, user_id, action, resource, details, ip_address FROM audit_log`
	args := []any{}
	if filter.Action != "" {
		query += ` WHERE action = ?`
		args = append(args, filter.Action)
	}
	query += ` ORDER BY timestamp DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.AuditEntry
	for rows.Next() {
		var (
			e  entity.AuditEntry
			ts int64
		)
		if err := rows.Scan(&e.ID, &ts, &e.User, &e.UserID, &e.Action, &e.Resource, &e.Details, &e.IPAddress); err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		e.Timestamp = time.Unix(ts, 0)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}
