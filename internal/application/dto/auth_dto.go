package dto

// LoginRequest body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserDTO the authenticated user as rendered to clients.
// Wire names follow the HRM backend's Vietnamese schema.
type UserDTO struct {
	ID           int    `json:"id"`
	FullName     string `json:"ho_ten"`
	Email        string `json:"email"`
	Title        string `json:"chuc_vu"`
	Role         string `json:"role"`
	DepartmentID *int   `json:"phong_ban_id"`
}

// LoginResponse token plus user, and where the client should navigate.
type LoginResponse struct {
	Success     bool    `json:"success"`
	Token       string  `json:"token"`
	User        UserDTO `json:"user"`
	DefaultView string  `json:"default_view"`
	DemoMode    bool    `json:"demo_mode,omitempty"`
}
