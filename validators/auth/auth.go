package authValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"elevate/middleware"
)

var validate = validator.New()

// RegisterInput is the registration payload.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register validates the registration payload.
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(RegisterInput)
		if err := c.BodyParser(input); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(input); err != nil {
			errs, ok := err.(validator.ValidationErrors)
			if ok && len(errs) > 0 {
				switch errs[0].Field() {
				case "Email":
					return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email format")
				case "Password":
					return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Password must be at least 6 characters long")
				case "Name":
					return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Name is required")
				}
			}
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed")
		}

		c.Locals("registerInput", input)
		return c.Next()
	}
}

// Login validates the login payload.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(LoginInput)
		if err := c.BodyParser(input); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(input); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email and password are required")
		}

		c.Locals("loginInput", input)
		return c.Next()
	}
}
