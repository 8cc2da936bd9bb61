package api

import (
	"net/http"
	"os"
	"path/filepath"

	"when-to-leave/internal/modules/departure"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all the API endpoints for the application.
func SetupRoutes(
	e *echo.Echo,
	departureHandler *departure.Handler,
	frontendDist string,
) {
	// --- API Routes ---
	e.GET("/when-to-leave", departureHandler.WhenToLeave)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- Frontend ---
	assets := filepath.Join(frontendDist, "assets")
	if info, err := os.Stat(assets); err == nil && info.IsDir() {
		e.Static("/assets", assets)
	}

	index := filepath.Join(frontendDist, "index.html")
	e.GET("/", func(c echo.Context) error {
		if _, err := os.Stat(index); err == nil {
			return c.File(index)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "App not ready"})
	})
}
