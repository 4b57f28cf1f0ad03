// Package hrmapi is the HTTP adapter to the external HRM chatbot backend.
// It implements ports.HRMBackend over plain net/http with JSON bodies; every
// method maps to one backend endpoint.
package hrmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/ports"
	"github.com/ics-security/hrm-chat-gateway/internal/domain"
)

// Compile-time check that Client implements the backend port.
var _ ports.HRMBackend = (*Client)(nil)

const maxResponseBytes = 1 << 20 // 1 MiB is plenty for any backend reply

// Client talks to the HRM backend API.
//
// The http.Client carries no global timeout: the chat flow waits for the
// backend as long as the caller's context allows, matching the product's
// behavior of an indefinitely delayed pending state rather than a client-side
// timeout fallback.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds the adapter. baseURL is e.g. "http://127.0.0.1:8000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// ── Wire types ────────────────────────────────────────────────────────────────

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the canonical login envelope. The backend historically
// answered with either {user} or {data:[user]}; the gateway standardizes on
// {success, message, user} and does not replicate the dual-path guess.
type loginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *dto.UserDTO `json:"user"`
}

type chatRequest struct {
	Question            string           `json:"question"`
	UserID              int              `json:"user_id"`
	Role                string           `json:"role"`
	DepartmentID        *int             `json:"phong_ban_id"`
	ConversationHistory []ports.ChatTurn `json:"conversation_history"`
}

type chatResponse struct {
	Answer      string `json:"answer"`
	DownloadURL string `json:"download_url"`
}

type briefingRequest struct {
	UserID       int    `json:"user_id"`
	Role         string `json:"role"`
	DepartmentID *int   `json:"phong_ban_id"`
}

type successEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type leaveRequestsResponse struct {
	Success  bool                  `json:"success"`
	Requests []dto.LeaveRequestDTO `json:"requests"`
}

type employeesResponse struct {
	Success   bool              `json:"success"`
	Employees []dto.EmployeeDTO `json:"employees"`
}

type projectsResponse struct {
	Success  bool             `json:"success"`
	Projects []dto.ProjectDTO `json:"projects"`
}

// ── Port implementation ───────────────────────────────────────────────────────

// Login verifies credentials against POST /login.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.UserDTO, error) {
	var out loginResponse
	if err := c.post(ctx, "/login", loginRequest{Username: username, Password: password}, &out); err != nil {
		return nil, err
	}
	if !out.Success || out.User == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, out.Message)
	}
	// The backend has been seen emitting "Admin"/"Manager" casings.
	out.User.Role = strings.ToLower(out.User.Role)
	return out.User, nil
}

// Ask runs one chat round trip against POST /chat.
func (c *Client) Ask(ctx context.Context, q ports.ChatQuery) (*ports.ChatAnswer, error) {
	history := q.History
	if history == nil {
		history = []ports.ChatTurn{}
	}
	var out chatResponse
	err := c.post(ctx, "/chat", chatRequest{
		Question:            q.Question,
		UserID:              q.UserID,
		Role:                q.Role,
		DepartmentID:        q.DepartmentID,
		ConversationHistory: history,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &ports.ChatAnswer{Answer: out.Answer, DownloadURL: out.DownloadURL}, nil
}

// Briefing fetches POST /briefing.
func (c *Client) Briefing(ctx context.Context, userID int, role string, departmentID *int) (*dto.BriefingDTO, error) {
	var out dto.BriefingDTO
	err := c.post(ctx, "/briefing", briefingRequest{
		UserID:       userID,
		Role:         role,
		DepartmentID: departmentID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminAnalytics fetches GET /admin/analytics.
func (c *Client) AdminAnalytics(ctx context.Context) (*dto.AnalyticsDTO, error) {
	var out dto.AnalyticsDTO
	if err := c.get(ctx, "/admin/analytics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ManagerAnalytics fetches GET /manager/analytics scoped to the manager.
func (c *Client) ManagerAnalytics(ctx context.Context, userID, departmentID int) (*dto.AnalyticsDTO, error) {
	var out dto.AnalyticsDTO
	query := url.Values{
		"user_id": {strconv.Itoa(userID)},
		"dept_id": {strconv.Itoa(departmentID)},
	}
	if err := c.get(ctx, "/manager/analytics", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LeaveRequests fetches GET /leave-requests?status=.
func (c *Client) LeaveRequests(ctx context.Context, status string) ([]dto.LeaveRequestDTO, error) {
	var out leaveRequestsResponse
	if err := c.get(ctx, "/leave-requests", url.Values{"status": {status}}, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, fmt.Errorf("hrm backend: leave-requests returned success=false")
	}
	return out.Requests, nil
}

// ApproveLeave posts the approval decision to POST /leave-approve.
func (c *Client) ApproveLeave(ctx context.Context, req dto.ApproveLeaveRequest) error {
	var out successEnvelope
	if err := c.post(ctx, "/leave-approve", req, &out); err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("hrm backend: leave-approve rejected: %s", out.Message)
	}
	return nil
}

// SubmitLeaveRequest files a leave request via POST /leave-request.
func (c *Client) SubmitLeaveRequest(ctx context.Context, p dto.LeaveRequestPayload) error {
	var out successEnvelope
	if err := c.post(ctx, "/leave-request", p, &out); err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("hrm backend: leave-request rejected: %s", out.Message)
	}
	return nil
}

// AssignTask creates a task via POST /assign-task.
func (c *Client) AssignTask(ctx context.Context, p dto.TaskAssignmentPayload) error {
	var out successEnvelope
	if err := c.post(ctx, "/assign-task", p, &out); err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("hrm backend: assign-task rejected: %s", out.Message)
	}
	return nil
}

// Employees fetches GET /employees scoped by role and department.
func (c *Client) Employees(ctx context.Context, role string, departmentID *int) ([]dto.EmployeeDTO, error) {
	query := url.Values{"role": {role}}
	if departmentID != nil {
		query.Set("phong_ban_id", strconv.Itoa(*departmentID))
	} else {
		query.Set("phong_ban_id", "")
	}
	var out employeesResponse
	if err := c.get(ctx, "/employees", query, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, fmt.Errorf("hrm backend: employees returned success=false")
	}
	return out.Employees, nil
}

// Projects fetches GET /projects.
func (c *Client) Projects(ctx context.Context) ([]dto.ProjectDTO, error) {
	var out projectsResponse
	if err := c.get(ctx, "/projects", nil, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, fmt.Errorf("hrm backend: projects returned success=false")
	}
	return out.Projects, nil
}

// ── Transport helpers ─────────────────────────────────────────────────────────

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("hrm backend: marshal %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("hrm backend: build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("hrm backend: build %s request: %w", path, err)
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("hrm backend: call %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("hrm backend: read %s response: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("hrm backend: %s returned HTTP %d: %s", path, resp.StatusCode, truncate(raw, 200))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("hrm backend: decode %s response: %w", path, err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
