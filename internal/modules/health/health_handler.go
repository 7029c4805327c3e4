package health

import (
	"net/http"

	"truck-load-planner/internal/models"

	"github.com/labstack/echo/v4"
)

// Handler serves the health check and the root welcome endpoint.
type Handler struct {
	service string
	version string
}

func NewHandler(service, version string) *Handler {
	return &Handler{service: service, version: version}
}

// RegisterRoutes mounts the root-level endpoints.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/", h.Root)
}

// Healthz reports service liveness. The optimizer has no downstream
// dependencies, so healthy means the process is serving.
func (h *Handler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Service: h.service,
		Version: h.version,
	})
}

// Root points callers at the documentation and health endpoints.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to " + h.service,
		"docs":    "/docs",
		"health":  "/healthz",
	})
}
