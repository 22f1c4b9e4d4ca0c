// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/household-tasks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/household-tasks/internal/adapters/http/middleware"
)

// Handlers groups the inbound handlers mounted by NewRouter.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Users         *handlers.UserHandler
	Tasks         *handlers.TaskHandler
	Notifications *handlers.NotificationHandler
	Health        *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. The session middleware
// must be part of that list for authenticated routes to see a session.
// loginLimiter may be nil to disable login throttling.
func NewRouter(h Handlers, loginLimiter *middleware.RateLimiter, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			if loginLimiter != nil {
				r.With(middleware.RateLimit(loginLimiter)).Post("/login", h.Auth.Login)
			} else {
				r.Post("/login", h.Auth.Login)
			}
			r.Post("/logout", h.Auth.Logout)
			r.With(middleware.RequireSession()).Get("/me", h.Auth.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession())

			r.Get("/users/maids", h.Users.ListMaids)
			r.Patch("/users/language", h.Users.UpdateLanguage)

			// /tasks/my is registered before /tasks/{id}; chi prefers the
			// static segment either way.
			r.Get("/tasks", h.Tasks.ListTasks)
			r.Post("/tasks", h.Tasks.CreateTask)
			r.Get("/tasks/my", h.Tasks.ListMyTasks)
			r.Get("/tasks/{id}", h.Tasks.GetTask)
			r.Patch("/tasks/{id}", h.Tasks.UpdateTask)
			r.Delete("/tasks/{id}", h.Tasks.DeleteTask)

			r.Get("/notifications", h.Notifications.ListNotifications)
			r.Get("/notifications/unread-count", h.Notifications.UnreadCount)
			r.Patch("/notifications/{id}/read", h.Notifications.MarkRead)
			r.Post("/notifications/read-all", h.Notifications.MarkAllRead)
		})
	})

	return r
}
