package usecase

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/repository"
	"github.com/ics-security/hrm-chat-gateway/pkg/logger"
)

// AuditUseCase records and queries the gateway's local audit trail.
type AuditUseCase struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

// NewAuditUseCase builds the use case.
func NewAuditUseCase(repo repository.AuditRepository, log *logger.Logger) *AuditUseCase {
	return &AuditUseCase{repo: repo, log: log}
}

// Record writes one audit entry. Auditing is best-effort: a storage failure
// is logged but never fails the calling operation.
func (uc *AuditUseCase) Record(sess *entity.Session, action, resource, details, ip string) {
	entry := &entity.AuditEntry{
		Timestamp: time.Now(),
		Action:    action,
		Resource:  resource,
		Details:   details,
		IPAddress: ip,
	}
	if sess != nil {
		entry.User = sess.FullName
		entry.UserID = sess.UserID
	} else {
		entry.User = "System"
	}
	if err := uc.repo.Record(entry); err != nil {
		uc.log.Error().Err(err).Str("action", action).Msg("audit record failed")
	}
}

// List returns entries newest first, filtered by action and by an
// accent-insensitive free-text search over user, resource and details, so
// "Nguyen" finds "Nguyễn".
func (uc *AuditUseCase) List(filter repository.AuditFilter) ([]*entity.AuditEntry, error) {
	entries, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	if filter.Search == "" {
		return entries, nil
	}

	needle := foldVietnamese(filter.Search)
	matched := entries[:0]
	for _, e := range entries {
		haystack := foldVietnamese(e.User + " " + e.Resource + " " + e.Details)
		if strings.Contains(haystack, needle) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// diacriticRemover strips combining marks after NFD decomposition.
var diacriticRemover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldVietnamese lowercases and strips Vietnamese diacritics. đ/Đ are not
// combining-mark letters, so they get an explicit mapping.
func foldVietnamese(s string) string {
	out, _, err := transform.String(diacriticRemover, s)
	if err != nil {
		out = s
	}
	out = strings.ReplaceAll(out, "đ", "d")
	out = strings.ReplaceAll(out, "Đ", "D")
	return strings.ToLower(out)
}
