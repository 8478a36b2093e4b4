package elevatorRoutes

import (
	"github.com/gofiber/fiber/v2"

	"elevate/config"
	elevatorController "elevate/controllers/elevator"
	"elevate/middleware"
	elevatorValidator "elevate/validators/elevator"
)

// SetupElevatorRoutes registers the rating CRUD and query endpoints.
// The specific paths must come before the /:id wildcard.
func SetupElevatorRoutes(app *fiber.App, handler *elevatorController.Handler, cfg *config.Config) {
	elevators := app.Group("/api/elevators")

	requireAuth := middleware.JWTMiddleware(cfg.JWTKey)
	optionalAuth := middleware.OptionalJWTMiddleware(cfg.JWTKey)

	elevators.Get("/", optionalAuth, handler.List)
	elevators.Get("/my", requireAuth, handler.ListMine)
	elevators.Get("/top/:limit", elevatorValidator.TopLimit(), handler.TopRated)
	elevators.Get("/city/:city", handler.ByCity)
	elevators.Get("/type/:type", handler.ByType)
	elevators.Get("/:id", optionalAuth, handler.GetByID)

	elevators.Post("/", requireAuth, elevatorValidator.Create(), handler.Create)
	elevators.Put("/:id", requireAuth, elevatorValidator.Update(), handler.Update)
	elevators.Delete("/:id", requireAuth, handler.Delete)
}
