package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Tokens stay valid for a week; expiry is the only revocation mechanism.
const tokenValidity = 7 * 24 * time.Hour

// GenerateJWT issues a signed bearer token bound to the user id.
func GenerateJWT(secret string, userID uint) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(tokenValidity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// parseUserID verifies the token signature and expiry and extracts the
// bound user id.
func parseUserID(secret, tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return 0, fmt.Errorf("invalid token payload")
	}

	// JWT numeric claims decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid token payload")
	}
	return uint(userID), nil
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return authHeader[len("Bearer "):], true
}

// JWTMiddleware rejects requests without a valid bearer token and stores
// the caller's user id in the request context.
func JWTMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
		}

		userID, err := parseUserID(secret, tokenString)
		if err != nil {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals("userId", userID)
		return c.Next()
	}
}

// OptionalJWTMiddleware extracts the caller's user id when a valid token is
// present and continues silently otherwise. Used on public reads so owned
// content can still be personalized.
func OptionalJWTMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenString, ok := bearerToken(c); ok {
			if userID, err := parseUserID(secret, tokenString); err == nil {
				c.Locals("userId", userID)
			}
		}
		return c.Next()
	}
}
