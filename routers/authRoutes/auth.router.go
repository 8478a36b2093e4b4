package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	"elevate/config"
	authController "elevate/controllers/auth"
	"elevate/middleware"
	authValidator "elevate/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, handler *authController.Handler, cfg *config.Config) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidator.Register(), handler.Register)
	authGroup.Post("/login", authValidator.Login(), handler.Login)
	authGroup.Get("/me", middleware.JWTMiddleware(cfg.JWTKey), handler.Me)
}
