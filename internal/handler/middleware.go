package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"budgetbuddy/internal/auth"
	"budgetbuddy/internal/errors"
)

// currentClaims extracts the authenticated user's claims set by the JWT middleware.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "missing or invalid token",
			Code:  "UNAUTHORIZED",
		})
	}
	return claims, nil
}

// RequireRole rejects requests whose token does not carry the given role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := currentClaims(c)
			if err != nil {
				return err
			}
			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: "insufficient permissions",
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}
