package authController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"elevate/config"
	"elevate/middleware"
	"elevate/models"
	authValidator "elevate/validators/auth"
)

// Handler serves registration, login and the current-identity lookup.
type Handler struct {
	db  *gorm.DB
	cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{db: db, cfg: cfg}
}

// Register creates an identity and issues its first token.
func (h *Handler) Register(c *fiber.Ctx) error {
	input := c.Locals("registerInput").(*authValidator.RegisterInput)

	// Check if email already exists
	var existing models.User
	if err := h.db.WithContext(c.UserContext()).Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Email is already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), h.cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
	}
	if err := h.db.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	token, err := middleware.GenerateJWT(h.cfg.JWTKey, user.ID)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are deliberately indistinguishable in the response.
func (h *Handler) Login(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(*authValidator.LoginInput)

	var user models.User
	if err := h.db.WithContext(c.UserContext()).Where("email = ?", input.Email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error looking up user: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to login")
		}
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := middleware.GenerateJWT(h.cfg.JWTKey, user.ID)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to login")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Me returns the caller's own identity record.
func (h *Handler) Me(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var user models.User
	if err := h.db.WithContext(c.UserContext()).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("Error looking up user: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get user info")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": user,
	})
}
