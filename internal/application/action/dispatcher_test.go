package action_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ics-security/hrm-chat-gateway/internal/application/action"
	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/ports"
	"github.com/ics-security/hrm-chat-gateway/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

type fakeBackend struct {
	ports.HRMBackend
	leaveErr error
	taskErr  error

	leaves []dto.LeaveRequestPayload
	tasks  []dto.TaskAssignmentPayload
}

func (f *fakeBackend) SubmitLeaveRequest(_ context.Context, p dto.LeaveRequestPayload) error {
	f.leaves = append(f.leaves, p)
	return f.leaveErr
}

func (f *fakeBackend) AssignTask(_ context.Context, p dto.TaskAssignmentPayload) error {
	f.tasks = append(f.tasks, p)
	return f.taskErr
}

// fakeTranscript records appended bot messages per session.
type fakeTranscript struct {
	appended map[string][]string
}

func newFakeTranscript() *fakeTranscript {
	return &fakeTranscript{appended: make(map[string][]string)}
}

func (f *fakeTranscript) AppendBot(sessionID, text string) {
	f.appended[sessionID] = append(f.appended[sessionID], text)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func leavePayload() dto.LeaveRequestPayload {
	return dto.LeaveRequestPayload{
		EmployeeID: 3,
		StartDate:  "2026-02-05",
		EndDate:    "2026-02-07",
		Reason:     "Việc gia đình",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Open / Close / Active
// ──────────────────────────────────────────────────────────────────────────────

func TestOpen_OverwritesTheActiveAction(t *testing.T) {
	d := action.NewDispatcher(&fakeBackend{}, newFakeTranscript(), testLogger())

	d.Open("sess-1", action.ActionLeaveRequest)
	d.Open("sess-1", action.ActionTaskAssignment)

	assert.Equal(t, action.ActionTaskAssignment, d.Active("sess-1"),
		"opening a second action replaces the first, no stacking")
}

func TestClose_ClearsTheActiveAction(t *testing.T) {
	d := action.NewDispatcher(&fakeBackend{}, newFakeTranscript(), testLogger())

	d.Open("sess-1", action.ActionLeaveRequest)
	d.Close("sess-1")

	assert.Empty(t, d.Active("sess-1"))
}

func TestActive_IsScopedPerSession(t *testing.T) {
	d := action.NewDispatcher(&fakeBackend{}, newFakeTranscript(), testLogger())

	d.Open("sess-a", action.ActionLeaveRequest)

	assert.Equal(t, action.ActionLeaveRequest, d.Active("sess-a"))
	assert.Empty(t, d.Active("sess-b"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Leave request submission
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitLeaveRequest_Accepted(t *testing.T) {
	backend := &fakeBackend{}
	transcript := newFakeTranscript()
	d := action.NewDispatcher(backend, transcript, testLogger())
	d.Open("sess-1", action.ActionLeaveRequest)

	ok := d.SubmitLeaveRequest(context.Background(), "sess-1", leavePayload())

	assert.True(t, ok)
	require.Len(t, backend.leaves, 1)
	assert.Empty(t, d.Active("sess-1"), "submission closes the modal")

	require.Len(t, transcript.appended["sess-1"], 1)
	msg := transcript.appended["sess-1"][0]
	assert.Contains(t, msg, "Đơn nghỉ phép đã được gửi thành công")
	assert.Contains(t, msg, "📅 Từ: 2026-02-05")
	assert.Contains(t, msg, "📅 Đến: 2026-02-07")
	assert.Contains(t, msg, "📝 Lý do: Việc gia đình")
	assert.NotContains(t, msg, "Demo mode")
}

func TestSubmitLeaveRequest_BackendFailureStillConfirms(t *testing.T) {
	backend := &fakeBackend{leaveErr: errors.New("connection refused")}
	transcript := newFakeTranscript()
	d := action.NewDispatcher(backend, transcript, testLogger())
	d.Open("sess-1", action.ActionLeaveRequest)

	ok := d.SubmitLeaveRequest(context.Background(), "sess-1", leavePayload())

	assert.False(t, ok, "the caller can tell the backend did not accept it")
	assert.Empty(t, d.Active("sess-1"), "the modal closes on failure too")

	require.Len(t, transcript.appended["sess-1"], 1,
		"a failed submission still appends its confirmation")
	msg := transcript.appended["sess-1"][0]
	assert.Contains(t, msg, "_(Demo mode)_")
	assert.Contains(t, msg, "📅 Từ: 2026-02-05")
}

// ──────────────────────────────────────────────────────────────────────────────
// Task assignment submission
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitTaskAssignment_ConfirmationSummarizesTheTask(t *testing.T) {
	backend := &fakeBackend{}
	transcript := newFakeTranscript()
	d := action.NewDispatcher(backend, transcript, testLogger())

	ok := d.SubmitTaskAssignment(context.Background(), "sess-1", dto.TaskAssignmentPayload{
		Name:         "Viết tài liệu API",
		RecipientIDs: []int{3, 4},
		AssignerID:   2,
		Deadline:     "2026-03-01",
		Priority:     "Cao",
	})

	assert.True(t, ok)
	require.Len(t, backend.tasks, 1)

	msg := transcript.appended["sess-1"][0]
	assert.Contains(t, msg, "📌 Tên: Viết tài liệu API")
	assert.Contains(t, msg, "👥 Số người nhận: 2")
	assert.Contains(t, msg, "📅 Hạn: 2026-03-01")
	assert.Contains(t, msg, "⚡ Ưu tiên: Cao")
}

func TestSubmitTaskAssignment_BackendFailureMarksDemoMode(t *testing.T) {
	backend := &fakeBackend{taskErr: errors.New("timeout")}
	transcript := newFakeTranscript()
	d := action.NewDispatcher(backend, transcript, testLogger())

	ok := d.SubmitTaskAssignment(context.Background(), "sess-1", dto.TaskAssignmentPayload{
		Name:         "Review code",
		RecipientIDs: []int{3},
		Deadline:     "2026-03-01",
		Priority:     "Thấp",
	})

	assert.False(t, ok)
	assert.Contains(t, transcript.appended["sess-1"][0], "_(Demo mode)_")
}
