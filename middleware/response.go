package middleware

import "github.com/gofiber/fiber/v2"

// ErrorResponse writes the generic error body used on every failure path.
// Internal failure detail never reaches the client through here.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}
