package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/ports"
	"github.com/ics-security/hrm-chat-gateway/internal/application/usecase"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

// HRHandler proxies the HR surface the approval and task forms need:
// pending leave requests, approvals, and the employee and project pickers.
type HRHandler struct {
	backend ports.HRMBackend
	audit   *usecase.AuditUseCase
}

// NewHRHandler builds the HR handler.
func NewHRHandler(backend ports.HRMBackend, audit *usecase.AuditUseCase) *HRHandler {
	return &HRHandler{backend: backend, audit: audit}
}

// LeaveRequests godoc
// @Summary      Danh sách đơn nghỉ phép
// @Tags         hr
// @Produce      json
// @Param        status  query  string  false  "pending | all"  default(pending)
// @Success      200  {array}   dto.LeaveRequestDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/leave-requests [get]
func (h *HRHandler) LeaveRequests(c *fiber.Ctx) error {
	status := c.Query("status", "pending")
	out, err := h.backend.LeaveRequests(c.Context(), status)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
	}
	return c.JSON(out)
}

// ApproveLeave godoc
// @Summary      Duyệt hoặc từ chối đơn nghỉ phép
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApproveLeaveRequest  true  "request_id, approved"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/leave-approve [post]
func (h *HRHandler) ApproveLeave(c *fiber.Ctx) error {
	sess := GetSession(c)
	var in dto.ApproveLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.RequestID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "request_id is required"})
	}
	if in.AdminID == 0 {
		in.AdminID = sess.UserID
	}

	if err := h.backend.ApproveLeave(c.Context(), in); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
	}

	auditAction := entity.AuditApprove
	msg := "Đã duyệt đơn nghỉ phép"
	if !in.Approved {
		auditAction = entity.AuditReject
		msg = "Đã từ chối đơn nghỉ phép"
	}
	h.audit.Record(sess, auditAction, "leave request", fmt.Sprintf("request #%d", in.RequestID), c.IP())
	return c.JSON(dto.SuccessResponse{Success: true, Message: msg})
}

// Employees godoc
// @Summary      Danh sách nhân viên có thể nhận việc
// @Tags         hr
// @Produce      json
// @Success      200  {array}   dto.EmployeeDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *HRHandler) Employees(c *fiber.Ctx) error {
	sess := GetSession(c)
	out, err := h.backend.Employees(c.Context(), string(sess.Role), sess.DepartmentID)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
	}
	return c.JSON(out)
}

// Projects godoc
// @Summary      Danh sách dự án
// @Tags         hr
// @Produce      json
// @Success      200  {array}   dto.ProjectDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/projects [get]
func (h *HRHandler) Projects(c *fiber.Ctx) error {
	out, err := h.backend.Projects(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
	}
	return c.JSON(out)
}
