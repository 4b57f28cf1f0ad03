package export_test

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ics-security/hrm-chat-gateway/internal/application/export"
	"github.com/ics-security/hrm-chat-gateway/internal/domain"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

func sampleMessages() []entity.Message {
	at := time.Date(2026, 2, 5, 9, 30, 0, 0, time.Local)
	return []entity.Message{
		{Role: entity.SenderUser, Text: "Tôi còn bao nhiêu ngày phép?", Timestamp: at},
		{Role: entity.SenderBot, Text: "Bạn còn 9 ngày phép.", Timestamp: at.Add(2 * time.Second)},
	}
}

func TestTranscript_EmptyTranscriptCannotBeExported(t *testing.T) {
	_, err := export.Transcript(export.FormatText, "Lê Văn Cường", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyTranscript)
}

func TestTranscript_UnknownFormatIsRejected(t *testing.T) {
	_, err := export.Transcript("docx", "Lê Văn Cường", sampleMessages())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTranscript_TextFormat(t *testing.T) {
	file, err := export.Transcript(export.FormatText, "Lê Văn Cường", sampleMessages())
	require.NoError(t, err)

	assert.Contains(t, file.Name, ".txt")
	assert.Equal(t, "text/plain; charset=utf-8", file.ContentType)

	body := string(file.Data)
	assert.Contains(t, body, "LỊCH SỬ CHAT - HRM CHATBOT")
	assert.Contains(t, body, "Người dùng: Lê Văn Cường")
	assert.Contains(t, body, "👤 Lê Văn Cường")
	assert.Contains(t, body, "🤖 Bot")
	assert.Contains(t, body, "Tổng số tin nhắn: 2")
	assert.Contains(t, body, "05/02/2026 09:30:00", "timestamps use the dd/mm/yyyy layout")
}

func TestTranscript_JSONFormat(t *testing.T) {
	file, err := export.Transcript(export.FormatJSON, "Lê Văn Cường", sampleMessages())
	require.NoError(t, err)
	assert.Equal(t, "application/json", file.ContentType)

	var out struct {
		UserName      string `json:"userName"`
		TotalMessages int    `json:"totalMessages"`
		Messages      []struct {
			ID   int    `json:"id"`
			Role string `json:"role"`
			Text string `json:"text"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(file.Data, &out))

	assert.Equal(t, "Lê Văn Cường", out.UserName)
	assert.Equal(t, 2, out.TotalMessages)
	require.Len(t, out.Messages, 2)
	assert.Equal(t, 1, out.Messages[0].ID, "message IDs are 1-based")
	assert.Equal(t, "user", out.Messages[0].Role)
	assert.Equal(t, "bot", out.Messages[1].Role)
}

func TestTranscript_HTMLEscapesMessageText(t *testing.T) {
	messages := []entity.Message{{
		Role:      entity.SenderBot,
		Text:      `<script>alert("x")</script>`,
		Timestamp: time.Now(),
	}}
	file, err := export.Transcript(export.FormatHTML, "Lê Văn Cường", messages)
	require.NoError(t, err)

	body := string(file.Data)
	assert.NotContains(t, body, `<script>alert`, "message text must be escaped")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "Lịch sử Chat - HRM Chatbot")
}

// ──────────────────────────────────────────────────────────────────────────────
// Audit exports
// ──────────────────────────────────────────────────────────────────────────────

func sampleEntries() []*entity.AuditEntry {
	return []*entity.AuditEntry{{
		ID: 7, Timestamp: time.Date(2026, 2, 5, 9, 30, 0, 0, time.UTC),
		User: "Nguyễn Văn An", UserID: 1,
		Action: entity.AuditApprove, Resource: "leave request",
		Details: `request #12, note "ok"`, IPAddress: "10.0.0.1",
	}}
}

func TestAuditCSV_HeaderAndQuoting(t *testing.T) {
	file, err := export.AuditCSV(sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	rows, err := csv.NewReader(strings.NewReader(string(file.Data))).ReadAll()
	require.NoError(t, err, "the output must parse back as CSV, quoting included")
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"id", "timestamp", "user", "user_id", "action", "resource", "details", "ip_address"}, rows[0])
	assert.Equal(t, "7", rows[1][0])
	assert.Equal(t, "2026-02-05T09:30:00Z", rows[1][1])
	assert.Equal(t, "Nguyễn Văn An", rows[1][2])
	assert.Equal(t, `request #12, note "ok"`, rows[1][6])
}

func TestAuditJSON_WrapsEntriesWithTotals(t *testing.T) {
	file, err := export.AuditJSON(sampleEntries())
	require.NoError(t, err)

	var out struct {
		Total   int                  `json:"total"`
		Entries []*entity.AuditEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(file.Data, &out))
	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, entity.AuditApprove, out.Entries[0].Action)
}
