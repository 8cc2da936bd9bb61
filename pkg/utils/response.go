package utils

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"when-to-leave/internal/models"

	"github.com/labstack/echo/v4"
)

// RespondWithJSON writes payload with the given status.
func RespondWithJSON(c echo.Context, status int, payload interface{}) error {
	return c.JSON(status, payload)
}

// RespondWithError writes the standard error body.
func RespondWithError(c echo.Context, status int, message string) error {
	return c.JSON(status, models.ErrorResponse{Detail: message})
}

// StatusForError maps the error taxonomy onto HTTP status codes.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrServiceUnavailable),
		errors.Is(err, models.ErrMalformedResponse),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// HandleServiceError logs the full error and answers with its short message only.
func HandleServiceError(c echo.Context, logger *slog.Logger, err error) error {
	status := StatusForError(err)

	message := http.StatusText(status)
	var svcErr *models.ServiceError
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		message = svcErr.Message
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), "request failed", "path", c.Path(), "status", status, "error", err)
	}
	return RespondWithError(c, status, message)
}
