package dto

// BriefingDTO is the role-dependent daily briefing. Employee sessions get the
// personal blocks, managers additionally the team/department blocks, admins
// the company block; absent blocks are null.
type BriefingDTO struct {
	Greeting      string             `json:"greeting"`
	CheckinStatus *CheckinStatusDTO  `json:"checkin_status"`
	TasksToday    []BriefingTaskDTO  `json:"tasks_today"`
	LeaveBalance  *LeaveBalanceDTO   `json:"leave_balance"`
	Alerts        []BriefingAlertDTO `json:"alerts"`

	TeamSummary        *TeamSummaryDTO        `json:"team_summary"`
	DeptTasksSummary   *DeptTasksSummaryDTO   `json:"dept_tasks_summary"`
	DeptProjectSummary *DeptProjectSummaryDTO `json:"dept_projects_summary"`
	CompanySummary     *CompanySummaryDTO     `json:"company_summary"`
}

// CheckinStatusDTO today's attendance for the requesting user.
type CheckinStatusDTO struct {
	CheckedIn    bool    `json:"checked_in"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	IsLate       bool    `json:"is_late"`
	StatusText   string  `json:"status_text"`
}

// BriefingTaskDTO a task due today.
type BriefingTaskDTO struct {
	Name     string `json:"ten_cong_viec"`
	Deadline string `json:"han_hoan_thanh"`
	Priority string `json:"muc_do_uu_tien"`
	Status   string `json:"trang_thai"`
}

// LeaveBalanceDTO annual leave counters.
type LeaveBalanceDTO struct {
	Total     int `json:"tong_ngay_phep"`
	Used      int `json:"ngay_phep_da_dung"`
	Remaining int `json:"ngay_phep_con_lai"`
}

// BriefingAlertDTO a warning/info/error notice.
type BriefingAlertDTO struct {
	Type    string `json:"type"` // warning | info | error
	Message string `json:"message"`
}

// TeamSummaryDTO manager block: today's attendance across the team.
type TeamSummaryDTO struct {
	TotalEmployees int `json:"total_employees"`
	CheckedIn      int `json:"checked_in"`
	OnLeave        int `json:"on_leave"`
	NotCheckedIn   int `json:"not_checked_in"`
}

// DeptTasksSummaryDTO manager block: department task counters.
type DeptTasksSummaryDTO struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	OverdueTasks   int `json:"overdue_tasks"`
}

// DeptProjectSummaryDTO manager block: department project counters.
type DeptProjectSummaryDTO struct {
	TotalProjects   int `json:"total_projects"`
	OverdueProjects int `json:"overdue_projects"`
}

// CompanySummaryDTO admin block: company-wide counters.
type CompanySummaryDTO struct {
	TotalEmployees int `json:"total_employees"`
	CheckedInToday int `json:"checked_in_today"`
	ActiveProjects int `json:"active_projects"`
	OverdueTasks   int `json:"overdue_tasks"`
}
