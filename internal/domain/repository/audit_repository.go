package repository

import "github.com/ics-security/hrm-chat-gateway/internal/domain/entity"

// AuditFilter narrows audit listings. Zero values mean "no filter".
type AuditFilter struct {
	Action string // exact action match, e.g. "APPROVE"
	Search string // raw substring; matching is accent-insensitive
	Limit  int
}

// AuditRepository persists the gateway's audit trail.
type AuditRepository interface {
	Record(entry *entity.AuditEntry) error
	// List returns entries newest first. Search matching is done by the
	// caller-provided folded terms, so implementations return candidates
	// filtered by action only; free-text filtering happens in the use case.
	List(filter AuditFilter) ([]*entity.AuditEntry, error)
}
