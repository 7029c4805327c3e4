package models

import "errors"

// ErrInvalidTruck indicates the truck descriptor violates the capacity
// invariant (non-positive weight or volume). The HTTP layer rejects this
// before the optimizer runs; the optimizer re-checks so it can never divide
// by a zero capacity when a caller bypasses validation.
var ErrInvalidTruck = errors.New("truck capacity must be positive")

var ErrDuplicateOrderID = errors.New("all order IDs must be unique")
var ErrDeliveryBeforePickup = errors.New("delivery_date must be on or after pickup_date")
