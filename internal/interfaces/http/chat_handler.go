package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ics-security/hrm-chat-gateway/internal/application/chat"
	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/export"
	"github.com/ics-security/hrm-chat-gateway/internal/application/usecase"
	"github.com/ics-security/hrm-chat-gateway/internal/domain"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

// ChatHandler drives a session's chatbot conversation.
type ChatHandler struct {
	ctl   *chat.Controller
	audit *usecase.AuditUseCase
}

// NewChatHandler builds the chat handler.
func NewChatHandler(ctl *chat.Controller, audit *usecase.AuditUseCase) *ChatHandler {
	return &ChatHandler{ctl: ctl, audit: audit}
}

// Send godoc
// @Summary      Gửi câu hỏi cho chatbot
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatSendRequest  true  "question"
// @Success      200   {object}  dto.TranscriptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	sess := GetSession(c)
	var in dto.ChatSendRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}

	messages, err := h.ctl.Send(c.Context(), sess, in.Question)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuestion) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "question must not be empty"})
		}
		if errors.Is(err, domain.ErrChatBusy) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "CHAT_BUSY", Message: "a question is already in flight"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	h.audit.Record(sess, entity.AuditQuery, "chatbot", "question: "+truncateDetails(in.Question), c.IP())
	_, pending := h.ctl.Transcript(sess.ID)
	return c.JSON(dto.TranscriptResponse{Messages: messages, Pending: pending})
}

// Transcript godoc
// @Summary      Lịch sử hội thoại
// @Tags         chat
// @Produce      json
// @Success      200  {object}  dto.TranscriptResponse
// @Router       /api/chat [get]
func (h *ChatHandler) Transcript(c *fiber.Ctx) error {
	messages, pending := h.ctl.Transcript(GetSessionID(c))
	return c.JSON(dto.TranscriptResponse{Messages: messages, Pending: pending})
}

// Clear godoc
// @Summary      Xoá lịch sử hội thoại
// @Tags         chat
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/chat [delete]
func (h *ChatHandler) Clear(c *fiber.Ctx) error {
	h.ctl.Clear(GetSessionID(c))
	return c.JSON(dto.SuccessResponse{Success: true, Message: "conversation cleared"})
}

// Export godoc
// @Summary      Tải lịch sử chat (txt, json, html)
// @Tags         chat
// @Produce      octet-stream
// @Param        format  query  string  false  "txt | json | html"  default(txt)
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/chat/export [get]
func (h *ChatHandler) Export(c *fiber.Ctx) error {
	sess := GetSession(c)
	format := c.Query("format", export.FormatText)

	messages, _ := h.ctl.Transcript(sess.ID)
	file, err := export.Transcript(format, sess.FullName, messages)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTranscript) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_TRANSCRIPT", Message: "nothing to export yet"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown export format"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	h.audit.Record(sess, entity.AuditExport, "chat transcript", "format: "+format, c.IP())
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return c.Send(file.Data)
}

// truncateDetails keeps audit rows readable for long questions.
func truncateDetails(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
