package solver

import (
	"math"
	"sort"

	"fleetopt/internal/model"
)

// Allocate assigns shipments to vehicles with best-fit decreasing bin
// packing: shipments sorted by weight descending (stable, so equal weights
// keep input order), each placed into the vehicle with the least remaining
// capacity that still fits it. Tightest fit first preserves large remaining
// capacity elsewhere for later large items. Ties among equally tight
// vehicles go to the earliest vehicle in the input.
//
// A shipment that fits no vehicle goes to Unassigned; callers schedule an
// extra trip for those. The capacity invariant holds after every single
// assignment step, and every input shipment ends up in exactly one place.
//
// Preconditions (positive weights and capacities) are the boundary's job;
// the allocator is total over its domain and never fails.
func Allocate(vehicles []model.Vehicle, shipments []model.Shipment) model.Allocation {
	sorted := make([]model.Shipment, len(shipments))
	copy(sorted, shipments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WeightKg > sorted[j].WeightKg
	})

	remaining := make([]float64, len(vehicles))
	assignments := make(map[string][]string, len(vehicles))
	for i, v := range vehicles {
		remaining[i] = v.CapacityKg
		assignments[v.ID] = []string{}
	}

	unassigned := []string{}
	for _, s := range sorted {
		best := -1
		bestRemaining := math.MaxFloat64
		for i := range vehicles {
			// Strict < keeps the earliest equally-tight vehicle.
			if remaining[i] >= s.WeightKg && remaining[i] < bestRemaining {
				bestRemaining = remaining[i]
				best = i
			}
		}
		if best < 0 {
			unassigned = append(unassigned, s.ID)
			continue
		}
		remaining[best] -= s.WeightKg
		assignments[vehicles[best].ID] = append(assignments[vehicles[best].ID], s.ID)
	}

	return model.Allocation{Assignments: assignments, Unassigned: unassigned}
}
