package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ics-security/hrm-chat-gateway/internal/application/auth"
	"github.com/ics-security/hrm-chat-gateway/internal/application/chat"
	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/usecase"
	"github.com/ics-security/hrm-chat-gateway/internal/domain"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

// CookieConfig controls the session cookie set at login.
type CookieConfig struct {
	Name       string
	ExpMinutes int
	Secure     bool
}

// AuthHandler handles login, logout and the current-user endpoint.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	chat   *chat.Controller
	audit  *usecase.AuditUseCase
	cookie CookieConfig
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.AuthUseCase, chatCtl *chat.Controller, audit *usecase.AuditUseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, chat: chatCtl, audit: audit, cookie: cookie}
}

// Login godoc
// @Summary      Đăng nhập
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username and password are required"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Sai tên đăng nhập hoặc mật khẩu"})
		}
		if errors.Is(err, domain.ErrInvalidSession) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: "account has no valid role"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    out.Token,
		Expires:  time.Now().Add(time.Duration(h.cookie.ExpMinutes) * time.Minute),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	h.audit.Record(&entity.Session{UserID: out.User.ID, FullName: out.User.FullName},
		entity.AuditLogin, "auth", "user logged in", c.IP())
	return c.JSON(out)
}

// Logout godoc
// @Summary      Đăng xuất
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess != nil {
		h.audit.Record(sess, entity.AuditLogout, "auth", "user logged out", c.IP())
		if err := h.uc.Logout(sess.ID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		// The transcript lives only as long as the login.
		h.chat.Drop(sess.ID)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return c.JSON(dto.SuccessResponse{Success: true, Message: "logged out"})
}

// Me godoc
// @Summary      Người dùng hiện tại
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess := GetSession(c)
	return c.JSON(dto.UserDTO{
		ID:           sess.UserID,
		FullName:     sess.FullName,
		Email:        sess.Email,
		Title:        sess.Title,
		Role:         string(sess.Role),
		DepartmentID: sess.DepartmentID,
	})
}
