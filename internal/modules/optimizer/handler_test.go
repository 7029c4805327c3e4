package optimizer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"truck-load-planner/internal/models"

	"github.com/labstack/echo/v4"
)

func newTestServer(maxOrders int) *echo.Echo {
	e := echo.New()
	NewHandler(NewService(), maxOrders).RegisterRoutes(e.Group("/api/v1"))
	return e
}

func postOptimize(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/load-optimizer/optimize", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"truck": {"id": "truck-001", "max_weight_lbs": 45000, "max_volume_cuft": 2500},
	"orders": [
		{"id": "ORD-001", "payout_cents": 125000, "weight_lbs": 12000, "volume_cuft": 600,
		 "origin": "Chicago, IL", "destination": "Dallas, TX",
		 "pickup_date": "2026-03-10", "delivery_date": "2026-03-12", "is_hazmat": false},
		{"id": "ORD-002", "payout_cents": 98000, "weight_lbs": 8500, "volume_cuft": 450,
		 "origin": "Chicago, IL", "destination": "Dallas, TX",
		 "pickup_date": "2026-03-10", "delivery_date": "2026-03-12", "is_hazmat": false}
	]
}`

func TestOptimizeEndpointOK(t *testing.T) {
	rec := postOptimize(newTestServer(25), validBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var res models.OptimizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if res.TruckID != "truck-001" {
		t.Errorf("truck_id = %s; want truck-001", res.TruckID)
	}
	if len(res.SelectedOrderIDs) != 2 {
		t.Errorf("selected_order_ids = %v; want both orders", res.SelectedOrderIDs)
	}
	if res.TotalPayoutCents != 223000 {
		t.Errorf("total_payout_cents = %d; want 223000", res.TotalPayoutCents)
	}
}

func TestOptimizeEndpointResponseShape(t *testing.T) {
	rec := postOptimize(newTestServer(25), validBody)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	for _, key := range []string{
		"truck_id", "selected_order_ids", "total_payout_cents", "total_weight_lbs",
		"total_volume_cuft", "utilization_weight_percent", "utilization_volume_percent",
	} {
		if _, ok := body[key]; !ok {
			t.Errorf("response missing field %q", key)
		}
	}
}

func TestOptimizeEndpointEmptyOrders(t *testing.T) {
	body := `{"truck": {"id": "truck-001", "max_weight_lbs": 45000, "max_volume_cuft": 2500}, "orders": []}`
	rec := postOptimize(newTestServer(25), body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	// Empty selection serializes as [], not null.
	if !strings.Contains(rec.Body.String(), `"selected_order_ids":[]`) {
		t.Errorf("body = %s; want selected_order_ids to be []", rec.Body.String())
	}
}

func TestOptimizeEndpointMalformedBody(t *testing.T) {
	rec := postOptimize(newTestServer(25), `{"truck": `)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestOptimizeEndpointInvalidDate(t *testing.T) {
	body := strings.Replace(validBody, "2026-03-10", "03/10/2026", 1)
	rec := postOptimize(newTestServer(25), body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestOptimizeEndpointDeliveryBeforePickup(t *testing.T) {
	body := strings.Replace(validBody, `"delivery_date": "2026-03-12"`, `"delivery_date": "2026-03-09"`, 1)
	rec := postOptimize(newTestServer(25), body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "delivery_date") {
		t.Errorf("body = %s; want delivery_date message", rec.Body.String())
	}
}

func TestOptimizeEndpointDuplicateOrderIDs(t *testing.T) {
	body := strings.Replace(validBody, "ORD-002", "ORD-001", 1)
	rec := postOptimize(newTestServer(25), body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unique") {
		t.Errorf("body = %s; want uniqueness message", rec.Body.String())
	}
}

func TestOptimizeEndpointNegativePayout(t *testing.T) {
	body := strings.Replace(validBody, `"payout_cents": 125000`, `"payout_cents": -1`, 1)
	rec := postOptimize(newTestServer(25), body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestOptimizeEndpointMissingTruckID(t *testing.T) {
	body := strings.Replace(validBody, `"id": "truck-001", `, "", 1)
	rec := postOptimize(newTestServer(25), body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestOptimizeEndpointNonPositiveCapacity(t *testing.T) {
	body := strings.Replace(validBody, `"max_weight_lbs": 45000`, `"max_weight_lbs": 0`, 1)
	rec := postOptimize(newTestServer(25), body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestOptimizeEndpointTooManyOrders(t *testing.T) {
	rec := postOptimize(newTestServer(1), validBody)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d; want 413", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Maximum allowed: 1, received: 2") {
		t.Errorf("body = %s; want limit message", rec.Body.String())
	}
}
