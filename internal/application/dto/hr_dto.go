package dto

// EmployeeDTO a selectable task recipient.
type EmployeeDTO struct {
	ID         int    `json:"id"`
	FullName   string `json:"ho_ten"`
	Department string `json:"phong_ban"`
	Title      string `json:"chuc_vu"`
}

// ProjectDTO a selectable project for task assignment.
type ProjectDTO struct {
	ID     int    `json:"id"`
	Name   string `json:"ten_du_an"`
	Status string `json:"trang_thai"`
}

// LeaveRequestDTO a leave request awaiting (or past) approval.
type LeaveRequestDTO struct {
	ID         int    `json:"id"`
	EmployeeID int    `json:"nhan_vien_id"`
	FullName   string `json:"ho_ten"`
	Department string `json:"phong_ban"`
	StartDate  string `json:"tu_ngay"`
	EndDate    string `json:"den_ngay"`
	Days       int    `json:"so_ngay"`
	Reason     string `json:"ly_do"`
	Status     string `json:"trang_thai"` // Chờ duyệt | Đã duyệt | Từ chối
	CreatedAt  string `json:"ngay_tao"`
}

// ApproveLeaveRequest body for POST /api/leave-approve.
type ApproveLeaveRequest struct {
	RequestID int  `json:"request_id"`
	AdminID   int  `json:"admin_id"`
	Approved  bool `json:"approved"`
}
