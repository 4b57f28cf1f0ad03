package entity

import "time"

// Audit actions recorded by the gateway.
const (
	AuditCreate  = "CREATE"
	AuditUpdate  = "UPDATE"
	AuditDelete  = "DELETE"
	AuditApprove = "APPROVE"
	AuditReject  = "REJECT"
	AuditQuery   = "QUERY"
	AuditLogin   = "LOGIN"
	AuditLogout  = "LOGOUT"
	AuditExport  = "EXPORT"
)

// AuditEntry is one line of the gateway's local audit trail.
type AuditEntry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	UserID    int       `json:"user_id"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ip_address"`
}
