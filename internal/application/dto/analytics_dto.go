package dto

import "github.com/shopspring/decimal"

// AnalyticsStatsDTO headline counters of the dashboard.
type AnalyticsStatsDTO struct {
	TotalEmployees int `json:"total_employees"`
	CheckedInToday int `json:"checked_in_today"`
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	OverdueTasks   int `json:"overdue_tasks"`
	ActiveProjects int `json:"active_projects"`
}

// TopEmployeeDTO ranking entry by completed tasks.
type TopEmployeeDTO struct {
	FullName       string `json:"ho_ten"`
	Department     string `json:"ten_phong"`
	CompletedTasks int    `json:"completed_tasks"`
}

// EmployeeWorkloadDTO active-task load per employee.
type EmployeeWorkloadDTO struct {
	FullName    string `json:"ho_ten"`
	Department  string `json:"ten_phong"`
	ActiveTasks int    `json:"active_tasks"`
}

// ProjectHealthDTO per-project schedule health.
type ProjectHealthDTO struct {
	Name    string `json:"ten_du_an"`
	Status  string `json:"trang_thai_duan"`
	EndDate string `json:"ngay_ket_thuc"`
	Health  string `json:"health_status"` // Completed | Overdue | At Risk | On Track
}

// DepartmentStatDTO per-department task counters. CompletionRate is derived
// by the gateway (completed/total * 100) and not sent by the backend.
type DepartmentStatDTO struct {
	Department     string          `json:"ten_phong"`
	EmployeeCount  int             `json:"number_of_employees"`
	TotalTasks     int             `json:"total_tasks"`
	CompletedTasks int             `json:"completed_tasks"`
	CompletionRate decimal.Decimal `json:"completion_rate"`
}

// HourlyCountDTO chatbot query volume per hour.
type HourlyCountDTO struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

// AnalyticsDTO the full dashboard payload.
type AnalyticsDTO struct {
	Stats              AnalyticsStatsDTO     `json:"stats"`
	TaskCompletionRate decimal.Decimal       `json:"task_completion_rate"`
	TopEmployees       []TopEmployeeDTO      `json:"top_employees"`
	EmployeeWorkload   []EmployeeWorkloadDTO `json:"employee_workload"`
	ProjectHealth      []ProjectHealthDTO    `json:"project_health"`
	DepartmentStats    []DepartmentStatDTO   `json:"department_stats"`
	HourlyData         []HourlyCountDTO      `json:"hourlyData"`
}
