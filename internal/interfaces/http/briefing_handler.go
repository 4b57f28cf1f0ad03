package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/usecase"
)

// BriefingHandler serves the daily briefing banner.
type BriefingHandler struct {
	uc *usecase.BriefingUseCase
}

// NewBriefingHandler builds the briefing handler.
func NewBriefingHandler(uc *usecase.BriefingUseCase) *BriefingHandler {
	return &BriefingHandler{uc: uc}
}

// Get godoc
// @Summary      Bản tin đầu ngày
// @Tags         briefing
// @Produce      json
// @Success      200  {object}  dto.BriefingDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/briefing [get]
func (h *BriefingHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetSession(c))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
	}
	return c.JSON(out)
}
