// Package export generates the local download formats: transcript dumps in
// plain text, JSON and HTML, and audit-log exports in CSV and JSON. All of
// it is produced in-process, no backend round trip.
package export

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/ics-security/hrm-chat-gateway/internal/domain"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

// Transcript export formats.
const (
	FormatText = "txt"
	FormatJSON = "json"
	FormatHTML = "html"
)

const timestampLayout = "02/01/2006 15:04:05"

// TranscriptFile is a generated download.
type TranscriptFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Transcript renders the messages in the requested format. An empty
// transcript cannot be exported.
func Transcript(format, userName string, messages []entity.Message) (*TranscriptFile, error) {
	if len(messages) == 0 {
		return nil, domain.ErrEmptyTranscript
	}
	stamp := time.Now().Unix()
	switch format {
	case FormatText:
		return &TranscriptFile{
			Name:        fmt.Sprintf("chat-history-%d.txt", stamp),
			ContentType: "text/plain; charset=utf-8",
			Data:        transcriptText(userName, messages),
		}, nil
	case FormatJSON:
		data, err := transcriptJSON(userName, messages)
		if err != nil {
			return nil, err
		}
		return &TranscriptFile{
			Name:        fmt.Sprintf("chat-history-%d.json", stamp),
			ContentType: "application/json",
			Data:        data,
		}, nil
	case FormatHTML:
		data, err := transcriptHTML(userName, messages)
		if err != nil {
			return nil, err
		}
		return &TranscriptFile{
			Name:        fmt.Sprintf("chat-history-%d.html", stamp),
			ContentType: "text/html; charset=utf-8",
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", domain.ErrInvalidInput, format)
	}
}

func sender(m entity.Message, userName string) string {
	if m.Role == entity.SenderUser {
		return "👤 " + userName
	}
	return "🤖 Bot"
}

const textRule = "═══════════════════════════════════════════"
const textSeparator = "──────────────────────────────────────────"

func transcriptText(userName string, messages []entity.Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", textRule)
	fmt.Fprintf(&b, "   LỊCH SỬ CHAT - HRM CHATBOT\n")
	fmt.Fprintf(&b, "   Người dùng: %s\n", userName)
	fmt.Fprintf(&b, "   Xuất lúc: %s\n", time.Now().Format(timestampLayout))
	fmt.Fprintf(&b, "%s\n\n", textRule)

	for i, m := range messages {
		fmt.Fprintf(&b, "[%d] %s - %s\n", i+1, sender(m, userName), m.Timestamp.Format(timestampLayout))
		fmt.Fprintf(&b, "%s\n", m.Text)
		fmt.Fprintf(&b, "%s\n\n", textSeparator)
	}

	fmt.Fprintf(&b, "\n%s\n", textRule)
	fmt.Fprintf(&b, "   Tổng số tin nhắn: %d\n", len(messages))
	fmt.Fprintf(&b, "   © 2026 ICS Security - HRM Chatbot\n")
	fmt.Fprintf(&b, "%s\n", textRule)
	return []byte(b.String())
}

type transcriptExport struct {
	ExportedAt    time.Time           `json:"exportedAt"`
	UserName      string              `json:"userName"`
	TotalMessages int                 `json:"totalMessages"`
	Messages      []transcriptMessage `json:"messages"`
}

type transcriptMessage struct {
	ID        int       `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func transcriptJSON(userName string, messages []entity.Message) ([]byte, error) {
	out := transcriptExport{
		ExportedAt:    time.Now(),
		UserName:      userName,
		TotalMessages: len(messages),
		Messages:      make([]transcriptMessage, 0, len(messages)),
	}
	for i, m := range messages {
		out.Messages = append(out.Messages, transcriptMessage{
			ID:        i + 1,
			Role:      string(m.Role),
			Text:      m.Text,
			Timestamp: m.Timestamp,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

// htmlTemplate is the self-contained chat dump. Message text goes through
// html/template's contextual escaping.
var htmlTemplate = template.Must(template.New("transcript").Funcs(template.FuncMap{
	"fmtTime": func(t time.Time) string { return t.Format(timestampLayout) },
}).Parse(`<!DOCTYPE html>
<html lang="vi">
<head>
  <meta charset="UTF-8">
  <title>Lịch sử Chat - HRM Chatbot</title>
  <style>
    body { font-family: 'Segoe UI', sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; background: #1a1a2e; color: #eee; }
    h1 { text-align: center; color: #8b5cf6; }
    .meta { text-align: center; color: #888; margin-bottom: 30px; }
    .message { margin: 16px 0; padding: 16px; border-radius: 12px; }
    .user { background: linear-gradient(135deg, #6366f1, #8b5cf6); margin-left: 20%; }
    .bot { background: #2d2d44; margin-right: 20%; }
    .sender { font-weight: bold; margin-bottom: 8px; }
    .time { font-size: 12px; color: #aaa; }
    .text { white-space: pre-wrap; line-height: 1.6; }
    .footer { text-align: center; color: #666; margin-top: 40px; padding-top: 20px; border-top: 1px solid #333; }
  </style>
</head>
<body>
  <h1>🤖 Lịch sử Chat - HRM Chatbot</h1>
  <div class="meta">
    <p>Người dùng: <strong>{{.UserName}}</strong></p>
    <p>Xuất lúc: {{fmtTime .ExportedAt}}</p>
    <p>Tổng: {{.Total}} tin nhắn</p>
  </div>
{{range .Messages}}  <div class="message {{.RoleClass}}">
    <div class="sender">{{.Sender}} <span class="time">{{fmtTime .Timestamp}}</span></div>
    <div class="text">{{.Text}}</div>
  </div>
{{end}}  <div class="footer">
    <p>© 2026 ICS Security - HRM Chatbot</p>
  </div>
</body>
</html>`))

type htmlMessage struct {
	RoleClass string
	Sender    string
	Timestamp time.Time
	Text      string
}

func transcriptHTML(userName string, messages []entity.Message) ([]byte, error) {
	data := struct {
		UserName   string
		ExportedAt time.Time
		Total      int
		Messages   []htmlMessage
	}{
		UserName:   userName,
		ExportedAt: time.Now(),
		Total:      len(messages),
	}
	for _, m := range messages {
		roleClass := "bot"
		if m.Role == entity.SenderUser {
			roleClass = "user"
		}
		data.Messages = append(data.Messages, htmlMessage{
			RoleClass: roleClass,
			Sender:    sender(m, userName),
			Timestamp: m.Timestamp,
			Text:      m.Text,
		})
	}
	var b strings.Builder
	if err := htmlTemplate.Execute(&b, data); err != nil {
		return nil, fmt.Errorf("render transcript html: %w", err)
	}
	return []byte(b.String()), nil
}
