// Package chat implements the transcript state machine behind every chat
// page: an ordered, append-only message list per session with a single
// in-flight request at a time.
package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ics-security/hrm-chat-gateway/internal/application/ports"
	"github.com/ics-security/hrm-chat-gateway/internal/domain"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
	"github.com/ics-security/hrm-chat-gateway/pkg/logger"
)

// historyWindow bounds the conversation context sent upstream. The backend
// receives at most the last 6 transcript entries; this is fixed, not
// configurable.
const historyWindow = 6

// connectionErrorText is appended as a bot message whenever the backend call
// fails; chat errors never propagate to the caller as anything else.
const connectionErrorText = "❌ Lỗi kết nối backend. Vui lòng thử lại sau."

// conversation is the per-session transcript plus its in-flight flag.
// Transcripts are ephemeral: memory only, cleared by Clear or process exit.
type conversation struct {
	mu       sync.Mutex
	messages []entity.Message
	pending  bool
}

// Controller owns every live conversation and dispatches chat round trips to
// the backend.
type Controller struct {
	backend ports.HRMBackend
	log     *logger.Logger

	mu    sync.Mutex
	convs map[string]*conversation
}

// NewController builds the controller.
func NewController(backend ports.HRMBackend, log *logger.Logger) *Controller {
	return &Controller{
		backend: backend,
		log:     log,
		convs:   make(map[string]*conversation),
	}
}

func (ctl *Controller) conversation(sessionID string) *conversation {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	conv, ok := ctl.convs[sessionID]
	if !ok {
		conv = &conversation{}
		ctl.convs[sessionID] = conv
	}
	return conv
}

// Send runs one chat round trip for the session.
//
// Blank text (after trimming) appends nothing and issues no network call.
// The user message is appended immediately; the backend reply (or the fixed
// connection-error message on failure) is appended strictly after the call
// resolves, so a user message always precedes its bot reply. The pending
// flag is cleared on every path, success or failure.
//
// At most one round trip is in flight per transcript: a Send while another
// is pending returns domain.ErrChatBusy, the server-side twin of the
// disabled input control.
func (ctl *Controller) Send(ctx context.Context, sess *entity.Session, text string) ([]entity.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyQuestion
	}

	conv := ctl.conversation(sess.ID)

	conv.mu.Lock()
	if conv.pending {
		conv.mu.Unlock()
		return nil, domain.ErrChatBusy
	}
	// History is built from the transcript as it was before this question,
	// mirroring what the page had rendered when the user hit send.
	history := lastTurns(conv.messages, historyWindow)
	conv.messages = append(conv.messages, entity.Message{
		Role:      entity.SenderUser,
		Text:      text,
		Timestamp: time.Now(),
	})
	conv.pending = true
	conv.mu.Unlock()

	var deptID *int
	if sess.DepartmentID != nil {
		d := *sess.DepartmentID
		deptID = &d
	}
	answer, err := ctl.backend.Ask(ctx, ports.ChatQuery{
		Question:     text,
		UserID:       sess.UserID,
		Role:         string(sess.Role),
		DepartmentID: deptID,
		History:      history,
	})

	conv.mu.Lock()
	defer func() {
		conv.pending = false
		conv.mu.Unlock()
	}()

	if err != nil {
		ctl.log.Warn().Err(err).Str("session_id", sess.ID).Msg("chat backend call failed")
		conv.messages = append(conv.messages, entity.Message{
			Role:      entity.SenderBot,
			Text:      connectionErrorText,
			Timestamp: time.Now(),
		})
	} else {
		conv.messages = append(conv.messages, entity.Message{
			Role:        entity.SenderBot,
			Text:        answer.Answer,
			Timestamp:   time.Now(),
			DownloadURL: answer.DownloadURL,
		})
	}

	return snapshot(conv.messages), nil
}

// AppendBot appends a synthesized bot message outside the send cycle, used by
// the action workflows for their confirmation messages.
func (ctl *Controller) AppendBot(sessionID, text string) {
	conv := ctl.conversation(sessionID)
	conv.mu.Lock()
	defer conv.mu.Unlock()
	conv.messages = append(conv.messages, entity.Message{
		Role:      entity.SenderBot,
		Text:      text,
		Timestamp: time.Now(),
	})
}

// Clear resets the message list to empty. Session and pending state are
// untouched.
func (ctl *Controller) Clear(sessionID string) {
	conv := ctl.conversation(sessionID)
	conv.mu.Lock()
	defer conv.mu.Unlock()
	conv.messages = nil
}

// Transcript returns a copy of the message list and the pending flag.
func (ctl *Controller) Transcript(sessionID string) ([]entity.Message, bool) {
	conv := ctl.conversation(sessionID)
	conv.mu.Lock()
	defer conv.mu.Unlock()
	return snapshot(conv.messages), conv.pending
}

// Drop forgets the session's conversation entirely (logout).
func (ctl *Controller) Drop(sessionID string) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	delete(ctl.convs, sessionID)
}

// lastTurns maps the tail of the transcript to {role, content} pairs.
func lastTurns(messages []entity.Message, n int) []ports.ChatTurn {
	if len(messages) > n {
		messages = messages[len(messages)-n:]
	}
	turns := make([]ports.ChatTurn, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, ports.ChatTurn{Role: string(m.Role), Content: m.Text})
	}
	return turns
}

func snapshot(messages []entity.Message) []entity.Message {
	out := make([]entity.Message, len(messages))
	copy(out, messages)
	return out
}
