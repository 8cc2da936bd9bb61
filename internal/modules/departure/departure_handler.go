package departure

import (
	"log/slog"
	"net/http"

	"when-to-leave/internal/models"
	"when-to-leave/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for departure estimates.
type Handler struct {
	svc    ServiceInterface
	logger *slog.Logger
}

// NewHandler creates a new departure handler.
func NewHandler(svc ServiceInterface, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// WhenToLeave handles GET /when-to-leave.
func (h *Handler) WhenToLeave(c echo.Context) error {
	var req models.LeaveTimeRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	query, err := BuildQuery(req)
	if err != nil {
		return utils.HandleServiceError(c, h.logger, err)
	}

	resp, err := h.svc.WhenToLeave(c.Request().Context(), query)
	if err != nil {
		return utils.HandleServiceError(c, h.logger, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, resp)
}
