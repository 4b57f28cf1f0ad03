// Package action manages the modal workflows (leave request, task
// assignment): the single active action per session and the submission of
// workflow payloads to their backend endpoints.
package action

import (
	"context"
	"fmt"
	"sync"

	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/ports"
	"github.com/ics-security/hrm-chat-gateway/pkg/logger"
)

// Workflow identifiers.
const (
	ActionLeaveRequest   = "leave-request"
	ActionTaskAssignment = "task-assignment"
)

// transcriptAppender is the slice of the chat controller the dispatcher
// needs: appending synthesized bot confirmations to the session transcript.
type transcriptAppender interface {
	AppendBot(sessionID, text string)
}

// Dispatcher tracks at most one active modal workflow per session and
// submits workflow payloads. Submissions deliberately never fail from the
// user's point of view: when the backend call does not succeed, the
// confirmation is still appended, marked as a demo-mode acknowledgment, so
// the chat flow is never interrupted.
type Dispatcher struct {
	backend    ports.HRMBackend
	transcript transcriptAppender
	log        *logger.Logger

	mu     sync.Mutex
	active map[string]string // sessionID -> action identifier
}

// NewDispatcher builds the dispatcher.
func NewDispatcher(backend ports.HRMBackend, transcript transcriptAppender, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		backend:    backend,
		transcript: transcript,
		log:        log,
		active:     make(map[string]string),
	}
}

// Open sets the session's active action. Opening while another action is
// open overwrites it; there is no queueing or stacking.
func (d *Dispatcher) Open(sessionID, actionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active[sessionID] = actionID
}

// Close clears the session's active action.
func (d *Dispatcher) Close(sessionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.active, sessionID)
}

// Active returns the session's current action identifier, or "".
func (d *Dispatcher) Active(sessionID string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active[sessionID]
}

// SubmitLeaveRequest forwards the payload to the backend's /leave-request
// and appends the confirmation summarizing dates and reason. The action is
// closed and the confirmation appended on failure too (demo-mode marked).
// Returns whether the backend actually accepted the request.
func (d *Dispatcher) SubmitLeaveRequest(ctx context.Context, sessionID string, p dto.LeaveRequestPayload) bool {
	err := d.backend.SubmitLeaveRequest(ctx, p)
	demo := err != nil
	if demo {
		d.log.Warn().Err(err).Str("session_id", sessionID).Msg("leave request submission failed, acknowledging in demo mode")
	}

	d.Close(sessionID)
	d.transcript.AppendBot(sessionID, leaveConfirmation(p, demo))
	return !demo
}

// SubmitTaskAssignment forwards the payload to the backend's /assign-task
// with the same degrade-to-confirmation behavior as leave requests.
func (d *Dispatcher) SubmitTaskAssignment(ctx context.Context, sessionID string, p dto.TaskAssignmentPayload) bool {
	err := d.backend.AssignTask(ctx, p)
	demo := err != nil
	if demo {
		d.log.Warn().Err(err).Str("session_id", sessionID).Msg("task assignment failed, acknowledging in demo mode")
	}

	d.Close(sessionID)
	d.transcript.AppendBot(sessionID, taskConfirmation(p, demo))
	return !demo
}

func leaveConfirmation(p dto.LeaveRequestPayload, demo bool) string {
	header := "✅ **Đơn nghỉ phép đã được gửi thành công!**"
	if demo {
		header += " _(Demo mode)_"
	}
	return fmt.Sprintf("%s\n\n📅 Từ: %s\n📅 Đến: %s\n📝 Lý do: %s\n\n⏳ Đơn đang chờ duyệt từ cấp trên.",
		header, p.StartDate, p.EndDate, p.Reason)
}

func taskConfirmation(p dto.TaskAssignmentPayload, demo bool) string {
	header := "✅ **Công việc đã được giao thành công!**"
	if demo {
		header += " _(Demo mode)_"
	}
	return fmt.Sprintf("%s\n\n📌 Tên: %s\n👥 Số người nhận: %d\n📅 Hạn: %s\n⚡ Ưu tiên: %s",
		header, p.Name, len(p.RecipientIDs), p.Deadline, p.Priority)
}
