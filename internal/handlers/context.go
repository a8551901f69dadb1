package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/wYibin/miniweibo/internal/models"
	"github.com/wYibin/miniweibo/internal/services"
)

// getUserIDFromContext returns the viewer identity resolved by the JWT
// middleware, or 0 for anonymous requests.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// getLimitFromQuery parses the optional ?limit= parameter; the timeline
// service clamps it.
func getLimitFromQuery(c echo.Context) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return limit
}

// toHTTPError maps domain errors to HTTP status codes.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, services.ErrUnknownUser):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrSelfFollow),
		errors.Is(err, services.ErrEmptyText),
		errors.Is(err, services.ErrMissingUsername),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrMissingPassword),
		errors.Is(err, services.ErrPasswordMismatch):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
