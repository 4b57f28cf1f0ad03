package entity

import "time"

// Role is the closed set of access levels in the HRM chatbot.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is a member of the closed role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// DefaultView returns the role's own landing view. This is the fixed
// precedence used everywhere a user must be sent "home": admins land on
// /admin, managers on /manager, everyone else on /employee.
func (r Role) DefaultView() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleManager:
		return "/manager"
	default:
		return "/employee"
	}
}

// Session is the authenticated user's identity held by the gateway.
// Field naming follows the HRM backend (ho_ten, chuc_vu, phong_ban_id).
type Session struct {
	ID           string    `json:"id"`
	UserID       int       `json:"user_id"`
	FullName     string    `json:"ho_ten"`
	Email        string    `json:"email"`
	Title        string    `json:"chuc_vu"`
	Role         Role      `json:"role"`
	DepartmentID *int      `json:"phong_ban_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Valid reports whether the session can back role-specific rendering:
// it must have an identity and a role from the closed enumeration.
func (s *Session) Valid() bool {
	return s != nil && s.ID != "" && s.Role.Valid()
}
