package elevatorValidator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"elevate/middleware"
	"elevate/models"
)

var validate = validator.New()

// Create validates the full draft payload before the handler runs.
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(models.CreateElevatorInput)
		if err := c.BodyParser(input); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(input); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, validationMessage(err))
		}

		c.Locals("createElevatorInput", input)
		return c.Next()
	}
}

// Update validates a partial payload. An empty patch is allowed; it only
// refreshes the record's updatedAt.
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(models.UpdateElevatorInput)
		if err := c.BodyParser(input); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(input); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, validationMessage(err))
		}

		c.Locals("updateElevatorInput", input)
		return c.Next()
	}
}

// TopLimit rejects a non-numeric or non-positive :limit parameter.
func TopLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Params("limit"))
		if err != nil || limit < 1 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid limit")
		}

		c.Locals("topLimit", limit)
		return c.Next()
	}
}

// validationMessage turns the first struct violation into a client-facing
// message without leaking struct internals.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Validation failed"
	}

	fe := errs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s must be between 1 and 10", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
