package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"

	"github.com/H1dayet/StoreMonitoring/internal/auth"
	"github.com/H1dayet/StoreMonitoring/internal/transport/http/middleware"
)

// RegisterRoutes binds the HTTP surface. Issue and store listings are
// deliberately public; issue/store mutation requires the admin role;
// user management requires any valid token. Both policy choices follow
// the dashboard's existing authorization matrix.
func RegisterRoutes(app *fiber.App, h *Handler, tokens *auth.Tokens) {
	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireAdmin(tokens)

	app.Post("/auth/login", h.PostAuthLogin)

	app.Get("/issues", h.GetIssues)
	app.Get("/issues/:id", h.GetIssue)
	app.Post("/issues", requireAdmin, h.PostIssues)
	app.Patch("/issues/:id/status", requireAdmin, h.PatchIssueStatus)
	app.Delete("/issues/:id", requireAdmin, h.DeleteIssue)

	app.Get("/stores", h.GetStores)
	app.Post("/stores", requireAdmin, h.PostStores)
	app.Delete("/stores/:code", requireAdmin, h.DeleteStore)

	app.Get("/stats/summary", h.GetStatsSummary)

	admin := app.Group("/admin/users", requireAuth)
	admin.Get("/", h.GetUsers)
	admin.Post("/", h.PostUsers)
	admin.Patch("/:id", h.PatchUser)
	admin.Delete("/:id", h.DeleteUser)
}
