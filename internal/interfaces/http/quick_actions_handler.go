package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ics-security/hrm-chat-gateway/internal/application/action"
	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

// QuickActionsHandler serves the sidebar presets for the caller's role:
// pre-filled questions plus the buttons that open modal workflows.
type QuickActionsHandler struct{}

// NewQuickActionsHandler builds the handler.
func NewQuickActionsHandler() *QuickActionsHandler { return &QuickActionsHandler{} }

// Everyone gets the personal presets; managers and admins swap the last two
// for their oversight presets.
var commonActions = []dto.QuickActionDTO{
	{ID: "checkin", Icon: "⏰", Label: "Chấm công", Question: "Hôm nay tôi check-in lúc mấy giờ?", Color: "#22c55e"},
	{ID: "leave", Icon: "🏖️", Label: "Ngày phép", Question: "Tôi còn bao nhiêu ngày phép?", Color: "#3b82f6"},
	{ID: "tasks", Icon: "📋", Label: "Việc của tôi", Question: "Liệt kê công việc tôi cần làm", Color: "#f59e0b"},
	{ID: "salary", Icon: "💰", Label: "Lương", Question: "Lương tháng này của tôi là bao nhiêu?", Color: "#10b981"},
}

var managerActions = []dto.QuickActionDTO{
	{ID: "team-attendance", Icon: "👥", Label: "Phòng ban", Question: "Hôm nay ai trong phòng đi muộn?", Color: "#8b5cf6"},
	{ID: "team-leave", Icon: "📅", Label: "Nghỉ phép", Question: "Ai đang nghỉ phép hôm nay?", Color: "#ec4899"},
	{ID: "overdue", Icon: "⚠️", Label: "Trễ hạn", Question: "Công việc nào đang trễ hạn?", Color: "#ef4444"},
	{ID: "projects", Icon: "📁", Label: "Dự án", Question: "Tiến độ các dự án phòng tôi đang làm?", Color: "#06b6d4"},
}

var adminActions = []dto.QuickActionDTO{
	{ID: "company-attendance", Icon: "🏢", Label: "Toàn công ty", Question: "Thống kê chấm công toàn công ty hôm nay", Color: "#8b5cf6"},
	{ID: "dept-stats", Icon: "📊", Label: "Theo phòng", Question: "Thống kê nhân viên theo phòng ban", Color: "#ec4899"},
	{ID: "all-projects", Icon: "📁", Label: "Dự án", Question: "Liệt kê tất cả dự án đang chạy", Color: "#06b6d4"},
	{ID: "overdue-all", Icon: "⚠️", Label: "Trễ hạn", Question: "Có bao nhiêu công việc đang trễ hạn?", Color: "#ef4444"},
	{ID: "report", Icon: "📄", Label: "Báo cáo", Question: "Xuất báo cáo nhân sự tháng này ra Word", Color: "#22c55e"},
}

var leaveRequestButton = dto.ActionButtonDTO{
	ID: "action-leave-request", Icon: "📝", Label: "Đăng ký nghỉ phép",
	ActionType: action.ActionLeaveRequest, Color: "#8b5cf6",
}

var taskAssignmentButton = dto.ActionButtonDTO{
	ID: "action-task-assignment", Icon: "🎯", Label: "Giao việc",
	ActionType: action.ActionTaskAssignment, Color: "#f59e0b",
}

// Get godoc
// @Summary      Hành động nhanh theo vai trò
// @Tags         chat
// @Produce      json
// @Success      200  {object}  dto.QuickActionsResponse
// @Router       /api/quick-actions [get]
func (h *QuickActionsHandler) Get(c *fiber.Ctx) error {
	sess := GetSession(c)
	return c.JSON(quickActionsFor(sess.Role))
}

func quickActionsFor(role entity.Role) dto.QuickActionsResponse {
	var out dto.QuickActionsResponse
	switch role {
	case entity.RoleAdmin:
		out.Actions = append(append([]dto.QuickActionDTO{}, commonActions[:2]...), adminActions...)
		out.ActionButtons = []dto.ActionButtonDTO{taskAssignmentButton}
	case entity.RoleManager:
		out.Actions = append(append([]dto.QuickActionDTO{}, commonActions[:2]...), managerActions...)
		out.ActionButtons = []dto.ActionButtonDTO{leaveRequestButton, taskAssignmentButton}
	default:
		out.Actions = append([]dto.QuickActionDTO{}, commonActions...)
		out.ActionButtons = []dto.ActionButtonDTO{leaveRequestButton}
	}
	return out
}
