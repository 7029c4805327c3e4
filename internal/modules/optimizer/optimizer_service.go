package optimizer

import (
	"context"
	"math"
	"time"

	"truck-load-planner/internal/models"

	"golang.org/x/sync/errgroup"
)

// ServiceInterface defines the optimizer module's single business operation.
// Optimize is a pure function of its input: no shared state, deterministic
// output for identical requests.
type ServiceInterface interface {
	Optimize(ctx context.Context, req models.OptimizeRequest) (*models.OptimizeResponse, error)
}

type service struct{}

// NewService creates the load optimizer service.
func NewService() ServiceInterface {
	return &service{}
}

// orderGroup holds orders sharing one (origin, destination, hazmat) key.
// Only orders within the same group are ever combined: mixing lanes or
// hazmat with non-hazmat freight is always invalid.
type orderGroup struct {
	origin      string
	destination string
	isHazmat    bool
	orders      []models.Order
}

// groupResult is the best feasible subset found within one group.
type groupResult struct {
	payout int64
	weight float64
	volume float64
	orders []models.Order
}

// Optimize finds the subset of orders that maximizes total payout under the
// truck's weight and volume capacity, combining only orders on the same lane
// with the same hazmat status and pairwise-compatible time windows.
//
// An infeasible-but-valid input (nothing fits) yields an empty selection
// with zero totals; that is a successful outcome, not an error.
func (s *service) Optimize(ctx context.Context, req models.OptimizeRequest) (*models.OptimizeResponse, error) {
	truck := req.Truck
	if truck.MaxWeightLbs <= 0 || truck.MaxVolumeCuft <= 0 {
		return nil, models.ErrInvalidTruck
	}

	groups := groupCompatibleOrders(req.Orders)

	// Groups are fully independent search problems, so each runs on its own
	// goroutine. Results land in a fixed slot per group and are reduced in
	// group order after Wait, keeping the outcome deterministic.
	results := make([]groupResult, len(groups))
	g, _ := errgroup.WithContext(ctx)
	for i, grp := range groups {
		i, grp := i, grp
		g.Go(func() error {
			results[i] = searchGroup(truck, filterFeasible(truck, grp.orders))
			return nil
		})
	}
	_ = g.Wait()

	// Cross-group reduction: a truck carries exactly one lane/hazmat-class
	// load, so the single best group wins. Strictly-greater comparison keeps
	// the earliest group on ties.
	var best groupResult
	for _, r := range results {
		if r.payout > best.payout {
			best = r
		}
	}

	return assembleResponse(truck, best), nil
}

// groupCompatibleOrders partitions orders by exact (origin, destination,
// hazmat) equality. Groups keep the first-appearance order of the input so
// that downstream tie-breaking does not depend on map iteration order.
func groupCompatibleOrders(orders []models.Order) []orderGroup {
	type key struct {
		origin      string
		destination string
		isHazmat    bool
	}

	index := make(map[key]int)
	groups := make([]orderGroup, 0)

	for _, o := range orders {
		k := key{o.Origin, o.Destination, o.IsHazmat}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, orderGroup{
				origin:      o.Origin,
				destination: o.Destination,
				isHazmat:    o.IsHazmat,
			})
		}
		groups[i].orders = append(groups[i].orders, o)
	}

	return groups
}

// filterFeasible drops orders that individually exceed truck capacity; they
// can never be part of any valid selection.
func filterFeasible(truck models.Truck, orders []models.Order) []models.Order {
	feasible := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.WeightLbs > truck.MaxWeightLbs || o.VolumeCuft > truck.MaxVolumeCuft {
			continue
		}
		feasible = append(feasible, o)
	}
	return feasible
}

// searchGroup enumerates every non-empty subset of the group as an n-bit
// mask in ascending order and keeps the highest-payout subset that fits
// capacity and whose time windows are pairwise compatible. Group sizes are
// capped by the per-request order limit, keeping 2^n tractable.
//
// Tie-break: payout must strictly exceed the current best, so equal-payout
// subsets resolve to the first one found in ascending mask order.
func searchGroup(truck models.Truck, orders []models.Order) groupResult {
	n := len(orders)
	if n == 0 {
		return groupResult{}
	}

	var best groupResult
	for mask := 1; mask < 1<<n; mask++ {
		var (
			weight, volume float64
			payout         int64
			maxPickup      time.Time
			minDelivery    time.Time
		)
		first := true

		for i := 0; i < n; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			o := orders[i]
			weight += o.WeightLbs
			volume += o.VolumeCuft
			payout += o.PayoutCents

			pickup, delivery := o.PickupDate.Time, o.DeliveryDate.Time
			if first {
				maxPickup, minDelivery = pickup, delivery
				first = false
				continue
			}
			if pickup.After(maxPickup) {
				maxPickup = pickup
			}
			if delivery.Before(minDelivery) {
				minDelivery = delivery
			}
		}

		if weight > truck.MaxWeightLbs || volume > truck.MaxVolumeCuft {
			continue
		}
		// Time windows are compatible when the latest pickup in the subset
		// does not pass the earliest delivery deadline.
		if maxPickup.After(minDelivery) {
			continue
		}

		if payout > best.payout {
			best = groupResult{
				payout: payout,
				weight: weight,
				volume: volume,
				orders: selectedFromMask(mask, orders),
			}
		}
	}

	return best
}

// selectedFromMask extracts the orders named by mask, preserving the slice
// order (which is the original input order within the group).
func selectedFromMask(mask int, orders []models.Order) []models.Order {
	selected := make([]models.Order, 0)
	for i := range orders {
		if mask&(1<<i) != 0 {
			selected = append(selected, orders[i])
		}
	}
	return selected
}

// assembleResponse computes totals and capacity utilization for the winning
// subset. Utilization is a percentage of truck capacity rounded to two
// decimal places; division is safe because capacities were validated
// positive on entry.
func assembleResponse(truck models.Truck, best groupResult) *models.OptimizeResponse {
	ids := make([]string, 0, len(best.orders))
	for _, o := range best.orders {
		ids = append(ids, o.ID)
	}

	var weightUtil, volumeUtil float64
	if best.weight > 0 {
		weightUtil = round2(best.weight / truck.MaxWeightLbs * 100)
	}
	if best.volume > 0 {
		volumeUtil = round2(best.volume / truck.MaxVolumeCuft * 100)
	}

	return &models.OptimizeResponse{
		TruckID:                  truck.ID,
		SelectedOrderIDs:         ids,
		TotalPayoutCents:         best.payout,
		TotalWeightLbs:           best.weight,
		TotalVolumeCuft:          best.volume,
		UtilizationWeightPercent: weightUtil,
		UtilizationVolumePercent: volumeUtil,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
