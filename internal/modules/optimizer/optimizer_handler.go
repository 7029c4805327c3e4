package optimizer

import (
	"fmt"
	"net/http"
	"time"

	"truck-load-planner/internal/metrics"
	"truck-load-planner/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for load optimization.
type Handler struct {
	svc       ServiceInterface
	validate  *validator.Validate // For request body validation
	maxOrders int
}

// NewHandler creates a new optimizer handler. maxOrders caps the number of
// orders accepted per request; the exhaustive subset search is only
// tractable because this cap is enforced before the optimizer runs.
func NewHandler(svc ServiceInterface, maxOrders int) *Handler {
	return &Handler{
		svc:       svc,
		validate:  validator.New(),
		maxOrders: maxOrders,
	}
}

// RegisterRoutes mounts the optimizer routes on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/load-optimizer/optimize", h.Optimize)
}

// Optimize accepts a truck and a list of candidate orders and returns the
// payout-maximizing selection. An empty selection is a valid 200 response.
func (h *Handler) Optimize(c echo.Context) error {
	var req models.OptimizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}

	if len(req.Orders) > h.maxOrders {
		metrics.Optimizations.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Message: fmt.Sprintf("Too many orders. Maximum allowed: %d, received: %d", h.maxOrders, len(req.Orders)),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		metrics.Optimizations.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}
	if err := validateOrders(req.Orders); err != nil {
		metrics.Optimizations.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
	}

	start := time.Now()
	result, err := h.svc.Optimize(c.Request().Context(), req)
	if err != nil {
		if err == models.ErrInvalidTruck {
			metrics.Optimizations.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		}
		c.Logger().Error("Handler.Optimize: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to optimize load"})
	}
	metrics.OptimizationDuration.Observe(time.Since(start).Seconds())

	outcome := "selected"
	if len(result.SelectedOrderIDs) == 0 {
		outcome = "empty"
	}
	metrics.Optimizations.WithLabelValues(outcome).Inc()

	return c.JSON(http.StatusOK, result)
}

// validateOrders covers the cross-field rules the struct tags cannot
// express: order IDs unique within a request and delivery on or after
// pickup for every order.
func validateOrders(orders []models.Order) error {
	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.ID]; ok {
			return models.ErrDuplicateOrderID
		}
		seen[o.ID] = struct{}{}

		if o.DeliveryDate.Before(o.PickupDate.Time) {
			return models.ErrDeliveryBeforePickup
		}
	}
	return nil
}
