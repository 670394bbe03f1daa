package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const suggestionBackend = "keyword-lexicon"

type HealthHandler struct {
	appName string
	version string
}

type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	AIBackend string `json:"ai_backend"`
}

func NewHealthHandler(appName, version string) *HealthHandler {
	return &HealthHandler{
		appName: appName,
		version: version,
	}
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		AIBackend: suggestionBackend,
	})
}

func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "🎄 " + h.appName,
		"version": h.version,
		"health":  "/health",
		"metrics": "/metrics",
		"api":     "/api/v1",
	})
}
