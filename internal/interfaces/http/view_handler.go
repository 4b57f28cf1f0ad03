package http

import (
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

// ViewHandler serves the page shells. The pages themselves are thin: the
// chat UI talks to /api; what matters here is which role may land where.
type ViewHandler struct{}

// NewViewHandler builds the view handler.
func NewViewHandler() *ViewHandler { return &ViewHandler{} }

const loginShell = `<!doctype html>
<html lang="vi">
<head><meta charset="utf-8"><title>HRM Chatbot - Đăng nhập</title></head>
<body>
<div id="root" data-view="login"></div>
</body>
</html>`

const viewShell = `<!doctype html>
<html lang="vi">
<head><meta charset="utf-8"><title>HRM Chatbot</title></head>
<body>
<div id="root" data-view="%s" data-role="%s" data-user="%s"></div>
</body>
</html>`

// Login renders the login page. An already authenticated user has no
// business here and is sent to their landing view.
func (h *ViewHandler) Login(c *fiber.Ctx) error {
	if sess := GetSession(c); sess != nil {
		return c.Redirect(sess.Role.DefaultView(), fiber.StatusFound)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(loginShell)
}

// View renders the role dashboard shell for the given view path. The route
// guard has already verified the role, so the session is present here.
func (h *ViewHandler) View(view string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(renderShell(view, sess))
	}
}

// Root handles "/" and every unknown path: authenticated users land on
// their default view, everyone else on /login. No 404 pages.
func (h *ViewHandler) Root(c *fiber.Ctx) error {
	if sess := GetSession(c); sess != nil {
		return c.Redirect(sess.Role.DefaultView(), fiber.StatusFound)
	}
	return c.Redirect("/login", fiber.StatusFound)
}

func renderShell(view string, sess *entity.Session) string {
	name, role := "", ""
	if sess != nil {
		name, role = template.HTMLEscapeString(sess.FullName), string(sess.Role)
	}
	return fmt.Sprintf(viewShell, view, role, name)
}
