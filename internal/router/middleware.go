package router

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tooldocker/internal/auth"
	"tooldocker/internal/errors"
	"tooldocker/internal/model"
	"tooldocker/internal/repository"
)

// RequireAdmin verifies the caller's role against the profiles table on every
// request. The role claim in the token is not trusted on its own: a demoted
// admin is locked out as soon as the row changes, not when the token expires.
func RequireAdmin(profiles repository.ProfileRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "missing authentication",
					Code:  "UNAUTHORIZED",
				})
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid claims",
					Code:  "UNAUTHORIZED",
				})
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid user id",
					Code:  "UNAUTHORIZED",
				})
			}

			profile, err := profiles.FindByID(c.Request().Context(), userID)
			if err != nil || profile.Role != model.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: "admin access required",
					Code:  "FORBIDDEN",
				})
			}

			return next(c)
		}
	}
}
