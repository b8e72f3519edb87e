package middleware

import (
	"net/http"
	"strings"

	"github.com/anonto42/second-brain/backend/internal/auth"
	"github.com/labstack/echo/v4"
)

// UserIDKey is the echo context key under which the authenticated user id is
// stored. Downstream handlers trust it completely.
const UserIDKey = "userID"

// JWTAuthMiddleware checks for a valid bearer token and attaches the resolved
// user id to the request context, or rejects the request with 401.
func JWTAuthMiddleware(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authorization header missing"})
			}

			// The "Bearer " prefix is optional, a bare token is accepted too.
			tokenString := strings.TrimPrefix(header, "Bearer ")

			userID, err := tokens.Verify(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid or expired token"})
			}

			c.Set(UserIDKey, userID)

			return next(c)
		}
	}
}
