package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"when-to-leave/internal/models"

	"github.com/labstack/echo/v4"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{models.NewServiceError(models.ErrValidation, "bad", nil), http.StatusBadRequest},
		{models.NewServiceError(models.ErrNotFound, "Flight AA1 not found", nil), http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", models.NewServiceError(models.ErrServiceUnavailable, "down", nil)), http.StatusServiceUnavailable},
		{models.NewServiceError(models.ErrConfiguration, "Need flight API key", nil), http.StatusInternalServerError},
		{context.DeadlineExceeded, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := StatusForError(tt.err); got != tt.want {
			t.Errorf("StatusForError(%v) = %d; want %d", tt.err, got, tt.want)
		}
	}
}

func TestHandleServiceErrorHidesCause(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	cause := errors.New("dial tcp 10.0.0.1:443: i/o timeout")
	err := models.NewServiceError(models.ErrServiceUnavailable, "Flight API timeout", cause)
	if err := HandleServiceError(c, slog.New(slog.NewTextHandler(io.Discard, nil)), err); err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d; want 503", rec.Code)
	}
	var body models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Detail != "Flight API timeout" {
		t.Errorf("detail = %q; want the short message only", body.Detail)
	}
}

func TestHandleServiceErrorLogging(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantLog bool
	}{
		{"unavailable", models.NewServiceError(models.ErrServiceUnavailable, "Flight API timeout", errors.New("dial tcp 10.0.0.1:443: i/o timeout")), true},
		{"configuration", models.NewServiceError(models.ErrConfiguration, "Need flight API key", errors.New("FLIGHTAWARE_API_KEY unset")), true},
		{"validation", models.NewServiceError(models.ErrValidation, "Invalid flight number format", errors.New("regex mismatch")), false},
		{"not found", models.NewServiceError(models.ErrNotFound, "Flight AA1 not found", errors.New("empty flights array")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/when-to-leave", nil), httptest.NewRecorder())

			if err := HandleServiceError(c, logger, tt.err); err != nil {
				t.Fatal(err)
			}

			logged := buf.String()
			if !tt.wantLog {
				if logged != "" {
					t.Errorf("unexpected log output: %s", logged)
				}
				return
			}
			var svcErr *models.ServiceError
			errors.As(tt.err, &svcErr)
			if !strings.Contains(logged, "level=ERROR") || !strings.Contains(logged, svcErr.Err.Error()) {
				t.Errorf("log = %q; want an ERROR record carrying the cause", logged)
			}
		})
	}
}

func TestValidatorFlightNumber(t *testing.T) {
	type req struct {
		Flight string `validate:"flightnumber"`
	}

	tests := []struct {
		flight string
		ok     bool
	}{
		{"AA123", true},
		{"UAL1", true},
		{"DL1234", true},
		{"12345", false},
		{"A123", false},
		{"AA12345", false},
		{"aa123", false},
	}

	for _, tt := range tests {
		err := GetValidator().Validate(req{Flight: tt.flight})
		if (err == nil) != tt.ok {
			t.Errorf("Validate(%q) err = %v; want ok=%v", tt.flight, err, tt.ok)
		}
	}
}
