package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ics-security/hrm-chat-gateway/internal/application/action"
	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/usecase"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// ActionHandler drives the modal workflows: opening and closing them, and
// submitting the leave-request and task-assignment forms.
type ActionHandler struct {
	disp  *action.Dispatcher
	audit *usecase.AuditUseCase
}

// NewActionHandler builds the action handler.
func NewActionHandler(disp *action.Dispatcher, audit *usecase.AuditUseCase) *ActionHandler {
	return &ActionHandler{disp: disp, audit: audit}
}

// Open godoc
// @Summary      Mở form hành động
// @Tags         actions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenActionRequest  true  "action_id"
// @Success      200   {object}  dto.ActiveActionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/actions/open [post]
func (h *ActionHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenActionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.ActionID != action.ActionLeaveRequest && in.ActionID != action.ActionTaskAssignment {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown action"})
	}
	sessionID := GetSessionID(c)
	h.disp.Open(sessionID, in.ActionID)
	return c.JSON(dto.ActiveActionResponse{ActiveAction: h.disp.Active(sessionID)})
}

// Close godoc
// @Summary      Đóng form hành động
// @Tags         actions
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/actions/close [post]
func (h *ActionHandler) Close(c *fiber.Ctx) error {
	h.disp.Close(GetSessionID(c))
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Active godoc
// @Summary      Hành động đang mở
// @Tags         actions
// @Produce      json
// @Success      200  {object}  dto.ActiveActionResponse
// @Router       /api/actions/active [get]
func (h *ActionHandler) Active(c *fiber.Ctx) error {
	return c.JSON(dto.ActiveActionResponse{ActiveAction: h.disp.Active(GetSessionID(c))})
}

// SubmitLeaveRequest godoc
// @Summary      Gửi đơn nghỉ phép
// @Tags         actions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LeaveRequestPayload  true  "tu_ngay, den_ngay, ly_do"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/actions/leave-request [post]
func (h *ActionHandler) SubmitLeaveRequest(c *fiber.Ctx) error {
	sess := GetSession(c)
	var in dto.LeaveRequestPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.EmployeeID == 0 {
		in.EmployeeID = sess.UserID
	}
	if msg := validateLeaveRequest(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}

	accepted := h.disp.SubmitLeaveRequest(c.Context(), sess.ID, in)
	h.audit.Record(sess, entity.AuditCreate, "leave request",
		"từ "+in.StartDate+" đến "+in.EndDate, c.IP())
	return c.JSON(dto.SuccessResponse{Success: true, Message: leaveResultMessage(accepted)})
}

// SubmitTaskAssignment godoc
// @Summary      Giao việc
// @Tags         actions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TaskAssignmentPayload  true  "ten_cong_viec, nguoi_nhan_ids, han_hoan_thanh"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/actions/assign-task [post]
func (h *ActionHandler) SubmitTaskAssignment(c *fiber.Ctx) error {
	sess := GetSession(c)
	var in dto.TaskAssignmentPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.AssignerID == 0 {
		in.AssignerID = sess.UserID
	}
	if msg := validateTaskAssignment(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}

	accepted := h.disp.SubmitTaskAssignment(c.Context(), sess.ID, in)
	h.audit.Record(sess, entity.AuditCreate, "task assignment", "task: "+in.Name, c.IP())
	return c.JSON(dto.SuccessResponse{Success: true, Message: taskResultMessage(accepted)})
}

// validateLeaveRequest mirrors the form rules: both dates in YYYY-MM-DD, the
// range must not run backwards and the reason must not be blank.
func validateLeaveRequest(in dto.LeaveRequestPayload) string {
	if in.StartDate == "" || in.EndDate == "" {
		return "tu_ngay and den_ngay are required"
	}
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return "tu_ngay must be YYYY-MM-DD"
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return "den_ngay must be YYYY-MM-DD"
	}
	if end.Before(start) {
		return "den_ngay must not be before tu_ngay"
	}
	if in.Reason == "" {
		return "ly_do is required"
	}
	return ""
}

func validateTaskAssignment(in dto.TaskAssignmentPayload) string {
	if in.Name == "" {
		return "ten_cong_viec is required"
	}
	if len(in.RecipientIDs) == 0 {
		return "nguoi_nhan_ids must name at least one recipient"
	}
	if in.Deadline == "" {
		return "han_hoan_thanh is required"
	}
	if _, err := time.Parse(dateLayout, in.Deadline); err != nil {
		return "han_hoan_thanh must be YYYY-MM-DD"
	}
	return ""
}

func leaveResultMessage(accepted bool) string {
	if accepted {
		return "Đơn nghỉ phép đã được gửi"
	}
	return "Đơn nghỉ phép đã được ghi nhận (demo mode)"
}

func taskResultMessage(accepted bool) string {
	if accepted {
		return "Công việc đã được giao"
	}
	return "Công việc đã được ghi nhận (demo mode)"
}
