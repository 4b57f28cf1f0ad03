package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

// RequireView guards a page route. A misrouted user is never shown an error
// page: anonymous visitors go to /login, authenticated users whose role is
// not in the allow set go to their own landing view.
func RequireView(roles ...entity.Role) fiber.Handler {
	allowed := roleSet(roles)
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		if !allowed[sess.Role] {
			return c.Redirect(sess.Role.DefaultView(), fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireRole guards an API route: roles outside the allow set get 403 JSON.
func RequireRole(roles ...entity.Role) fiber.Handler {
	allowed := roleSet(roles)
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
		}
		if !allowed[sess.Role] {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "insufficient role"})
		}
		return c.Next()
	}
}

func roleSet(roles []entity.Role) map[entity.Role]bool {
	set := make(map[entity.Role]bool, len(roles))
	for _, r := range roles {
		set[r] = true
	}
	return set
}
