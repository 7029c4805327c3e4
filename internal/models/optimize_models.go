package models

// Truck describes the vehicle capacity constraints for one optimization call.
type Truck struct {
	ID            string  `json:"id" validate:"required"`
	MaxWeightLbs  float64 `json:"max_weight_lbs" validate:"required,gt=0"`
	MaxVolumeCuft float64 `json:"max_volume_cuft" validate:"required,gt=0"`
}

// Order is a candidate freight order. Payout is an integer amount in cents;
// origin and destination are opaque lane labels compared by exact equality.
type Order struct {
	ID           string  `json:"id" validate:"required"`
	PayoutCents  int64   `json:"payout_cents" validate:"gte=0"`
	WeightLbs    float64 `json:"weight_lbs" validate:"required,gt=0"`
	VolumeCuft   float64 `json:"volume_cuft" validate:"required,gt=0"`
	Origin       string  `json:"origin" validate:"required"`
	Destination  string  `json:"destination" validate:"required"`
	PickupDate   Date    `json:"pickup_date" validate:"required"`
	DeliveryDate Date    `json:"delivery_date" validate:"required"`
	IsHazmat     bool    `json:"is_hazmat"`
}

// OptimizeRequest is the input to the load optimization endpoint.
type OptimizeRequest struct {
	Truck  Truck   `json:"truck" validate:"required"`
	Orders []Order `json:"orders" validate:"dive"`
}

// OptimizeResponse reports the payout-maximizing selection for one truck.
// SelectedOrderIDs preserves the original input order of the orders list.
type OptimizeResponse struct {
	TruckID                  string   `json:"truck_id"`
	SelectedOrderIDs         []string `json:"selected_order_ids"`
	TotalPayoutCents         int64    `json:"total_payout_cents"`
	TotalWeightLbs           float64  `json:"total_weight_lbs"`
	TotalVolumeCuft          float64  `json:"total_volume_cuft"`
	UtilizationWeightPercent float64  `json:"utilization_weight_percent"`
	UtilizationVolumePercent float64  `json:"utilization_volume_percent"`
}

// HealthResponse is the body of the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ErrorResponse is the uniform JSON error body returned by all handlers.
type ErrorResponse struct {
	Message string `json:"message"`
}
