package dto

// OpenActionRequest body for POST /api/actions/open.
type OpenActionRequest struct {
	ActionID string `json:"action_id"` // e.g. "leave-request", "task-assignment"
}

// ActiveActionResponse the session's current modal workflow, if any.
type ActiveActionResponse struct {
	ActiveAction string `json:"active_action,omitempty"`
}

// LeaveRequestPayload body for the leave-request workflow, forwarded to the
// backend's POST /leave-request.
type LeaveRequestPayload struct {
	EmployeeID int    `json:"nhanvien_id"`
	StartDate  string `json:"tu_ngay"`  // YYYY-MM-DD
	EndDate    string `json:"den_ngay"` // YYYY-MM-DD
	Reason     string `json:"ly_do"`
}

// TaskAssignmentPayload body for the task-assignment workflow, forwarded to
// the backend's POST /assign-task.
type TaskAssignmentPayload struct {
	Name         string `json:"ten_cong_viec"`
	Description  string `json:"mo_ta"`
	ProjectID    *int   `json:"du_an_id"`
	RecipientIDs []int  `json:"nguoi_nhan_ids"`
	AssignerID   int    `json:"nguoi_giao_id"`
	Deadline     string `json:"han_hoan_thanh"` // YYYY-MM-DD
	Priority     string `json:"muc_do_uu_tien"` // Cao | Trung bình | Thấp
}
