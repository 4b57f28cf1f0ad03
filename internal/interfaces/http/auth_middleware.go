package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/session"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
	"github.com/ics-security/hrm-chat-gateway/pkg/jwt"
)

// Locals keys set by the auth middlewares.
const (
	LocalSessionID = "session_id"
	LocalRole      = "role"
	LocalSession   = "session"
)

// resolveToken extracts the session token from the Authorization header or,
// failing that, from the session cookie. Returns "" when neither is present.
func resolveToken(c *fiber.Ctx, cookieName string) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.Cookies(cookieName)
}

// resolveSession validates the token and looks the session up in the store.
// Returns nil when the token is absent, invalid or the session is gone.
func resolveSession(c *fiber.Ctx, jwtSecret, cookieName string, store *session.Store) *entity.Session {
	token := resolveToken(c, cookieName)
	if token == "" {
		return nil
	}
	sessionID, _, err := jwt.Parse(jwtSecret, token)
	if err != nil {
		return nil
	}
	return store.Get(sessionID)
}

// AuthMiddleware protects API routes: a valid token backed by a live session
// is required, otherwise the request is rejected with a 401 JSON body.
func AuthMiddleware(jwtSecret, cookieName string, store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := resolveSession(c, jwtSecret, cookieName, store)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
		}
		c.Locals(LocalSessionID, sess.ID)
		c.Locals(LocalRole, string(sess.Role))
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// ViewMiddleware resolves the session for page routes without failing the
// request. Guards downstream decide where an anonymous or misplaced user
// goes; this middleware only fills the locals when a session exists.
func ViewMiddleware(jwtSecret, cookieName string, store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sess := resolveSession(c, jwtSecret, cookieName, store); sess != nil {
			c.Locals(LocalSessionID, sess.ID)
			c.Locals(LocalRole, string(sess.Role))
			c.Locals(LocalSession, sess)
		}
		return c.Next()
	}
}

// GetSession returns the session placed in the context by the middlewares,
// or nil when the request is anonymous.
func GetSession(c *fiber.Ctx) *entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	sess, _ := v.(*entity.Session)
	return sess
}

// GetSessionID returns the session ID from the context.
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
