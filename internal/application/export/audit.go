package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

// auditCSVHeader column order of the CSV export.
var auditCSVHeader = []string{"id", "timestamp", "user", "user_id", "action", "resource", "details", "ip_address"}

// AuditCSV renders the audit entries as a CSV download.
func AuditCSV(entries []*entity.AuditEntry) (*TranscriptFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(auditCSVHeader); err != nil {
		return nil, fmt.Errorf("audit csv: %w", err)
	}
	for _, e := range entries {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Timestamp.Format(time.RFC3339),
			e.User,
			strconv.Itoa(e.UserID),
			e.Action,
			e.Resource,
			e.Details,
			e.IPAddress,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("audit csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("audit csv: %w", err)
	}
	return &TranscriptFile{
		Name:        fmt.Sprintf("audit-log-%d.csv", time.Now().Unix()),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

// AuditJSON renders the audit entries as a JSON download.
func AuditJSON(entries []*entity.AuditEntry) (*TranscriptFile, error) {
	out := struct {
		ExportedAt time.Time            `json:"exportedAt"`
		Total      int                  `json:"total"`
		Entries    []*entity.AuditEntry `json:"entries"`
	}{
		ExportedAt: time.Now(),
		Total:      len(entries),
		Entries:    entries,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("audit json: %w", err)
	}
	return &TranscriptFile{
		Name:        fmt.Sprintf("audit-log-%d.json", time.Now().Unix()),
		ContentType: "application/json",
		Data:        data,
	}, nil
}
