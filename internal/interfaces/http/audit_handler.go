package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/export"
	"github.com/ics-security/hrm-chat-gateway/internal/application/usecase"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/repository"
)

// AuditHandler serves the admin-only audit trail.
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler builds the audit handler.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Nhật ký hoạt động
// @Tags         audit
// @Produce      json
// @Param        action  query  string  false  "CREATE | UPDATE | DELETE | APPROVE | REJECT | QUERY | LOGIN | LOGOUT | EXPORT"
// @Param        search  query  string  false  "accent-insensitive free text"
// @Param        limit   query  int     false  "max rows"  default(200)
// @Success      200  {array}   entity.AuditEntry
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	entries, err := h.uc.List(filterFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(entries)
}

// Export godoc
// @Summary      Xuất nhật ký (csv, json)
// @Tags         audit
// @Produce      octet-stream
// @Param        format  query  string  false  "csv | json"  default(csv)
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/audit/export [get]
func (h *AuditHandler) Export(c *fiber.Ctx) error {
	entries, err := h.uc.List(filterFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	var file *export.TranscriptFile
	switch format := c.Query("format", "csv"); format {
	case "csv":
		file, err = export.AuditCSV(entries)
	case "json":
		file, err = export.AuditJSON(entries)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown export format"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	h.uc.Record(GetSession(c), entity.AuditExport, "audit log", "downloaded "+file.Name, c.IP())
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return c.Send(file.Data)
}

func filterFromQuery(c *fiber.Ctx) repository.AuditFilter {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	return repository.AuditFilter{
		Action: c.Query("action"),
		Search: c.Query("search"),
		Limit:  limit,
	}
}
