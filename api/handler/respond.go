package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"compogen/internal/dto"
	"compogen/internal/service"

	"github.com/labstack/echo/v4"
)

func decodeJSON(c echo.Context, target any) error {
	return json.NewDecoder(c.Request().Body).Decode(target)
}

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, dto.Response{Success: true, Data: data})
}

func respondList(c echo.Context, count int, data any) error {
	return c.JSON(http.StatusOK, dto.Response{Success: true, Count: &count, Data: data})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, dto.Response{Success: true, Message: message})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, dto.Response{Success: false, Message: message})
}

// writeServiceError maps the service error taxonomy to HTTP statuses and
// client-facing messages. Anything unmapped is a 500 with the raw error in
// the envelope's error field; stack traces never leave the server.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return respondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, service.ErrEmailTaken):
		return respondError(c, http.StatusBadRequest, "User with this email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		return respondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrUserNotFound):
		return respondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrSessionNotFound):
		return respondError(c, http.StatusNotFound, "Session not found")
	default:
		return c.JSON(http.StatusInternalServerError, dto.Response{
			Success: false,
			Message: "Server error",
			Error:   err.Error(),
		})
	}
}
