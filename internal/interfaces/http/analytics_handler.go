package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/usecase"
	"github.com/ics-security/hrm-chat-gateway/internal/domain"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

// AnalyticsHandler serves the dashboard payload and its PDF report.
type AnalyticsHandler struct {
	uc    *usecase.AnalyticsUseCase
	audit *usecase.AuditUseCase
}

// NewAnalyticsHandler builds the analytics handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase, audit *usecase.AuditUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, audit: audit}
}

// Dashboard godoc
// @Summary      Dashboard analytics
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.AnalyticsDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/analytics [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context(), GetSession(c))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "analytics requires admin or manager role"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Xuất báo cáo analytics PDF
// @Tags         analytics
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/analytics/report [get]
func (h *AnalyticsHandler) Report(c *fiber.Ctx) error {
	sess := GetSession(c)
	data, name, err := h.uc.GenerateReport(c.Context(), sess)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "analytics requires admin or manager role"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
	}

	h.audit.Record(sess, entity.AuditExport, "analytics report", name, c.IP())
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}
