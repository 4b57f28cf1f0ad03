package ports

import (
	"context"

	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
)

// ChatTurn is one history entry sent upstream with a chat question.
type ChatTurn struct {
	Role    string `json:"role"` // "user" | "bot"
	Content string `json:"content"`
}

// ChatQuery is the full payload of a backend /chat call.
type ChatQuery struct {
	Question     string
	UserID       int
	Role         string
	DepartmentID *int
	History      []ChatTurn
}

// ChatAnswer is the backend's reply to a chat question.
type ChatAnswer struct {
	Answer      string
	DownloadURL string
}

// HRMBackend is the port to the external HRM chatbot API. Every method maps
// to one backend endpoint; implementations return wrapped transport errors
// and never panic on malformed bodies.
type HRMBackend interface {
	// Login verifies credentials against POST /login. Returns
	// domain.ErrInvalidCredentials on a success:false envelope.
	Login(ctx context.Context, username, password string) (*dto.UserDTO, error)

	// Ask runs one chat round trip against POST /chat.
	Ask(ctx context.Context, q ChatQuery) (*ChatAnswer, error)

	// Briefing fetches the role-dependent daily briefing.
	Briefing(ctx context.Context, userID int, role string, departmentID *int) (*dto.BriefingDTO, error)

	// AdminAnalytics fetches GET /admin/analytics.
	AdminAnalytics(ctx context.Context) (*dto.AnalyticsDTO, error)
	// ManagerAnalytics fetches GET /manager/analytics scoped to the manager.
	ManagerAnalytics(ctx context.Context, userID, departmentID int) (*dto.AnalyticsDTO, error)

	// LeaveRequests lists leave requests by status ("pending" or "all").
	LeaveRequests(ctx context.Context, status string) ([]dto.LeaveRequestDTO, error)
	// ApproveLeave approves or rejects one request.
	ApproveLeave(ctx context.Context, req dto.ApproveLeaveRequest) error
	// SubmitLeaveRequest files a new leave request.
	SubmitLeaveRequest(ctx context.Context, p dto.LeaveRequestPayload) error
	// AssignTask creates a task for one or more recipients.
	AssignTask(ctx context.Context, p dto.TaskAssignmentPayload) error

	// Employees lists selectable recipients for the caller's scope.
	Employees(ctx context.Context, role string, departmentID *int) ([]dto.EmployeeDTO, error)
	// Projects lists projects for the task form.
	Projects(ctx context.Context) ([]dto.ProjectDTO, error)
}
