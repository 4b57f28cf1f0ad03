package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ics-security/hrm-chat-gateway/internal/application/action"
	"github.com/ics-security/hrm-chat-gateway/internal/application/auth"
	"github.com/ics-security/hrm-chat-gateway/internal/application/chat"
	"github.com/ics-security/hrm-chat-gateway/internal/application/ports"
	"github.com/ics-security/hrm-chat-gateway/internal/application/session"
	"github.com/ics-security/hrm-chat-gateway/internal/application/usecase"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ChatCtl     *chat.Controller
	Dispatcher  *action.Dispatcher
	BriefingUC  *usecase.BriefingUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	AuditUC     *usecase.AuditUseCase
	Backend     ports.HRMBackend
	Sessions    *session.Store
	JWTSecret   string
	Cookie      CookieConfig
}

// Router registers the page routes and the API.
func Router(app *fiber.App, deps RouterDeps) {
	views := NewViewHandler()
	resolve := ViewMiddleware(deps.JWTSecret, deps.Cookie.Name, deps.Sessions)

	// Pages. Misrouted users are redirected, never shown an error page:
	// /employee admits everyone logged in, /manager admits managers and
	// admins, /admin admits admins only.
	app.Get("/login", resolve, views.Login)
	app.Get("/admin", resolve, RequireView(entity.RoleAdmin), views.View("admin"))
	app.Get("/manager", resolve, RequireView(entity.RoleAdmin, entity.RoleManager), views.View("manager"))
	app.Get("/employee", resolve, RequireView(entity.RoleAdmin, entity.RoleManager, entity.RoleEmployee), views.View("employee"))

	api := app.Group("/api")

	// Auth (login is public)
	authHandler := NewAuthHandler(deps.AuthUC, deps.ChatCtl, deps.AuditUC, deps.Cookie)
	api.Post("/auth/login", authHandler.Login)

	// Everything below requires a live session.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Cookie.Name, deps.Sessions))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Chat
	chatHandler := NewChatHandler(deps.ChatCtl, deps.AuditUC)
	protected.Post("/chat", chatHandler.Send)
	protected.Get("/chat", chatHandler.Transcript)
	protected.Delete("/chat", chatHandler.Clear)
	protected.Get("/chat/export", chatHandler.Export)

	quickActions := NewQuickActionsHandler()
	protected.Get("/quick-actions", quickActions.Get)

	// Modal workflows
	actionHandler := NewActionHandler(deps.Dispatcher, deps.AuditUC)
	protected.Post("/actions/open", actionHandler.Open)
	protected.Post("/actions/close", actionHandler.Close)
	protected.Get("/actions/active", actionHandler.Active)
	protected.Post("/actions/leave-request", actionHandler.SubmitLeaveRequest)
	protected.Post("/actions/assign-task",
		RequireRole(entity.RoleAdmin, entity.RoleManager), actionHandler.SubmitTaskAssignment)

	// Briefing
	briefingHandler := NewBriefingHandler(deps.BriefingUC)
	protected.Get("/briefing", briefingHandler.Get)

	// Analytics (admin and manager; the use case scopes the data)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, deps.AuditUC)
	protected.Get("/analytics", RequireRole(entity.RoleAdmin, entity.RoleManager), analyticsHandler.Dashboard)
	protected.Get("/analytics/report", RequireRole(entity.RoleAdmin, entity.RoleManager), analyticsHandler.Report)

	// HR surface for the approval panel and the task form
	hrHandler := NewHRHandler(deps.Backend, deps.AuditUC)
	protected.Get("/leave-requests", RequireRole(entity.RoleAdmin, entity.RoleManager), hrHandler.LeaveRequests)
	protected.Post("/leave-approve", RequireRole(entity.RoleAdmin, entity.RoleManager), hrHandler.ApproveLeave)
	protected.Get("/employees", hrHandler.Employees)
	protected.Get("/projects", hrHandler.Projects)

	// Audit trail (admin only)
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit", RequireRole(entity.RoleAdmin), auditHandler.List)
	protected.Get("/audit/export", RequireRole(entity.RoleAdmin), auditHandler.Export)

	// Fallback: "/" and any unknown path go to the caller's landing view.
	app.Get("/", resolve, views.Root)
	app.Use(resolve, views.Root)
}
