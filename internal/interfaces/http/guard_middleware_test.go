package http_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ics-security/hrm-chat-gateway/internal/application/session"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
	"github.com/ics-security/hrm-chat-gateway/internal/infrastructure/sqlite"
	apphttp "github.com/ics-security/hrm-chat-gateway/internal/interfaces/http"
	pkgjwt "github.com/ics-security/hrm-chat-gateway/pkg/jwt"
	"github.com/ics-security/hrm-chat-gateway/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testCookieName = "hrm_session"
	testIssuer     = "hrm-chat-gateway-test"
	testExpMin     = 60
)

// guardFixture is a Fiber app with the three guarded pages and one guarded
// API route, plus a live session per role.
type guardFixture struct {
	app    *fiber.App
	tokens map[entity.Role]string
}

func newGuardFixture(t *testing.T) *guardFixture {
	t.Helper()

	repo, err := sqlite.New(filepath.Join(t.TempDir(), "s.db"), logger.New(logger.Config{Env: "development", Level: "error"}))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	sessions, err := session.NewStore(repo, logger.New(logger.Config{Env: "development", Level: "error"}))
	require.NoError(t, err)

	users := map[entity.Role]*entity.Session{
		entity.RoleAdmin:    {ID: "sess-admin", UserID: 1, FullName: "Nguyễn Văn An", Role: entity.RoleAdmin},
		entity.RoleManager:  {ID: "sess-manager", UserID: 2, FullName: "Trần Thị Bình", Role: entity.RoleManager},
		entity.RoleEmployee: {ID: "sess-employee", UserID: 3, FullName: "Lê Văn Cường", Role: entity.RoleEmployee},
	}
	tokens := make(map[entity.Role]string, len(users))
	for role, sess := range users {
		require.NoError(t, sessions.Login(sess))
		tok, err := pkgjwt.Generate(testJWTSecret, sess.ID, string(role), testIssuer, testExpMin)
		require.NoError(t, err)
		tokens[role] = tok
	}

	app := fiber.New()
	resolve := apphttp.ViewMiddleware(testJWTSecret, testCookieName, sessions)
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }

	app.Get("/admin", resolve, apphttp.RequireView(entity.RoleAdmin), ok)
	app.Get("/manager", resolve, apphttp.RequireView(entity.RoleAdmin, entity.RoleManager), ok)
	app.Get("/employee", resolve, apphttp.RequireView(entity.RoleAdmin, entity.RoleManager, entity.RoleEmployee), ok)

	app.Get("/api/audit",
		apphttp.AuthMiddleware(testJWTSecret, testCookieName, sessions),
		apphttp.RequireRole(entity.RoleAdmin), ok)

	return &guardFixture{app: app, tokens: tokens}
}

// get issues a GET with an optional bearer token and returns the response.
func (f *guardFixture) get(t *testing.T, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Page guards: redirects only, never error pages
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireView_AnonymousGoesToLogin(t *testing.T) {
	f := newGuardFixture(t)
	for _, path := range []string{"/admin", "/manager", "/employee"} {
		resp := f.get(t, path, "")
		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
		resp.Body.Close()
	}
}

func TestRequireView_ManagerOnAdminPageIsSentHome(t *testing.T) {
	f := newGuardFixture(t)
	resp := f.get(t, "/admin", f.tokens[entity.RoleManager])
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode,
		"a misrouted user is redirected, not shown an error")
	assert.Equal(t, "/manager", resp.Header.Get("Location"),
		"the redirect lands on the role's own view")
}

func TestRequireView_EmployeeOnManagerPageIsSentHome(t *testing.T) {
	f := newGuardFixture(t)
	resp := f.get(t, "/manager", f.tokens[entity.RoleEmployee])
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/employee", resp.Header.Get("Location"))
}

func TestRequireView_HigherRolesPassLowerViews(t *testing.T) {
	f := newGuardFixture(t)

	// Admin may enter every view, manager may enter the employee view.
	for _, tc := range []struct {
		role entity.Role
		path string
	}{
		{entity.RoleAdmin, "/admin"},
		{entity.RoleAdmin, "/manager"},
		{entity.RoleAdmin, "/employee"},
		{entity.RoleManager, "/manager"},
		{entity.RoleManager, "/employee"},
		{entity.RoleEmployee, "/employee"},
	} {
		resp := f.get(t, tc.path, f.tokens[tc.role])
		assert.Equal(t, http.StatusOK, resp.StatusCode, "%s on %s", tc.role, tc.path)
		resp.Body.Close()
	}
}

func TestRequireView_InvalidTokenIsTreatedAsAnonymous(t *testing.T) {
	f := newGuardFixture(t)
	resp := f.get(t, "/admin", "not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// API guards
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_MissingTokenReturns401(t *testing.T) {
	f := newGuardFixture(t)
	resp := f.get(t, "/api/audit", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenWithoutLiveSessionReturns401(t *testing.T) {
	f := newGuardFixture(t)

	// A structurally valid token whose session was never created.
	tok, err := pkgjwt.Generate(testJWTSecret, "sess-ghost", "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := f.get(t, "/api/audit", tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"a token alone is not enough, the session must exist")
}

func TestAuthMiddleware_AcceptsSessionCookie(t *testing.T) {
	f := newGuardFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/audit", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: f.tokens[entity.RoleAdmin]})
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_NonAdminOnAdminAPIReturns403(t *testing.T) {
	f := newGuardFixture(t)

	for _, role := range []entity.Role{entity.RoleManager, entity.RoleEmployee} {
		resp := f.get(t, "/api/audit", f.tokens[role])
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, string(role))
		resp.Body.Close()
	}
}
