package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/koobs97/BonsCore-sub000/internal/auth/service"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, loginService *service.LoginService) {
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/refresh", h.Refresh)

	protected := app.Group("/api/v1", RequireAuth(loginService))
	protected.Delete("/session", h.Logout)
	protected.Get("/me", h.Me)
}
