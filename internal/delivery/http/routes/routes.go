package routes

import (
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Jobs         *handler.JobHandler
	Applications *handler.ApplicationHandler
	SavedJobs    *handler.SavedJobHandler
	Analytics    *handler.AnalyticsHandler
	Uploads      *handler.UploadHandler
	Health       *handler.HealthHandler
	WS           *ws.Handler

	AuthMiddleware *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	auth := r.AuthMiddleware.Middleware()

	r.Health.RegisterRoutes(app)

	r.Auth.RegisterRoutes(app.Group("/auth"), auth)
	r.Users.RegisterRoutes(app.Group("/users"), auth)
	r.Jobs.RegisterRoutes(app.Group("/jobs"), auth)
	r.Applications.RegisterRoutes(app.Group("/applications"), auth)
	r.SavedJobs.RegisterRoutes(app.Group("/save-jobs"), auth)
	r.Analytics.RegisterRoutes(app.Group("/analytics"), auth)
	r.Uploads.RegisterRoutes(app.Group("/uploads"), auth)

	app.Get("/ws", r.WS.Handle)
}
