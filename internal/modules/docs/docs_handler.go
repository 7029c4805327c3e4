package docs

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"truck-load-planner/internal/models"

	"github.com/labstack/echo/v4"
	yaml "gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPISpec []byte

// Handler serves the OpenAPI contract and a browsable documentation page.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the documentation endpoints at the root level.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/openapi.yaml", h.OpenAPIYAML)
	e.GET("/openapi.json", h.OpenAPIJSON)
	e.GET("/docs", h.Docs)
}

// OpenAPIYAML serves the embedded OpenAPI spec.
func (h *Handler) OpenAPIYAML(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/yaml", openAPISpec)
}

// OpenAPIJSON serves the spec converted to JSON for tooling that does not
// read YAML.
func (h *Handler) OpenAPIJSON(c echo.Context) error {
	var obj map[string]any
	if err := yaml.Unmarshal(openAPISpec, &obj); err != nil {
		c.Logger().Error("Handler.OpenAPIJSON: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "OpenAPI spec not available"})
	}
	b, err := json.Marshal(obj)
	if err != nil {
		c.Logger().Error("Handler.OpenAPIJSON: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "OpenAPI spec not available"})
	}
	return c.JSONBlob(http.StatusOK, b)
}

// Docs serves a minimal ReDoc page referencing /openapi.yaml.
func (h *Handler) Docs(c echo.Context) error {
	return c.HTML(http.StatusOK, `<!DOCTYPE html><html><head><title>API Docs</title>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1">
<script src="https://cdn.jsdelivr.net/npm/redoc@next/bundles/redoc.standalone.js"></script>
</head><body>
<redoc spec-url="/openapi.yaml"></redoc>
</body></html>`)
}
