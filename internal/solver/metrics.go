package solver

import (
	"fmt"
	"time"

	"fleetopt/internal/geo"
	"fleetopt/internal/model"
)

// DefaultSpeedKmh is the assumed average effective speed (mixed
// urban/highway driving) used when no configuration overrides it.
const DefaultSpeedKmh = 40.0

// BuildRoute derives waypoints, aggregate metrics, and validation findings
// from an already-sequenced list of stops. Leg distances are haversine
// (start->first, first->second, ...); arrival estimates are departAt plus
// cumulative travel time at speedKmh.
//
// Validation findings never block the route from being returned. Repairing
// a defective order would require re-solving and could mask the caller's
// deeper input error, so defects are reported as data instead.
func BuildRoute(start model.Coordinate, ordered []model.Stop, departAt time.Time, speedKmh float64) model.OptimizedRoute {
	if speedKmh <= 0 {
		speedKmh = DefaultSpeedKmh
	}

	waypoints := make([]model.Waypoint, 0, len(ordered))
	current := start
	totalKm := 0.0
	elapsed := 0.0 // hours

	for i, s := range ordered {
		leg := geo.Distance(current, s.Coordinate)
		totalKm += leg
		elapsed += leg / speedKmh
		waypoints = append(waypoints, model.Waypoint{
			Order:                  i,
			ID:                     s.ID,
			Kind:                   s.Kind,
			ShipmentID:             s.ShipmentID,
			Coordinate:             s.Coordinate,
			DistanceFromPreviousKm: leg,
			EstimatedArrival:       departAt.Add(time.Duration(elapsed * float64(time.Hour))),
		})
		current = s.Coordinate
	}

	errs := ValidateWaypoints(waypoints)
	return model.OptimizedRoute{
		Waypoints:       waypoints,
		TotalDistanceKm: totalKm,
		TotalTimeHours:  elapsed,
		IsValid:         len(errs) == 0,
		Errors:          errs,
	}
}

// ValidateWaypoints checks structural and logical correctness of a sequenced
// route: unique waypoint identifiers, pickup-before-drop ordering per
// shipment, and pair completeness for shipment-linked waypoints.
func ValidateWaypoints(waypoints []model.Waypoint) []string {
	errs := []string{}

	seen := map[string]struct{}{}
	for _, wp := range waypoints {
		if wp.ID == "" {
			continue
		}
		if _, dup := seen[wp.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate waypoint id %q", wp.ID))
			continue
		}
		seen[wp.ID] = struct{}{}
	}

	pickups := map[string]int{}
	drops := map[string]int{}
	linked := 0
	for _, wp := range waypoints {
		if wp.Kind == "" || wp.ShipmentID == "" {
			continue
		}
		linked++
		switch wp.Kind {
		case model.KindPickup:
			pickups[wp.ShipmentID] = wp.Order
		case model.KindDrop:
			drops[wp.ShipmentID] = wp.Order
		}
	}

	for sid, dropOrder := range drops {
		pickOrder, ok := pickups[sid]
		if !ok {
			errs = append(errs, fmt.Sprintf("shipment %s has a drop but no pickup", sid))
			continue
		}
		// A shipment cannot be delivered before it is collected.
		if dropOrder <= pickOrder {
			errs = append(errs, fmt.Sprintf("shipment %s dropped at order %d before pickup at order %d", sid, dropOrder, pickOrder))
		}
	}
	for sid := range pickups {
		if _, ok := drops[sid]; !ok {
			errs = append(errs, fmt.Sprintf("shipment %s has a pickup but no drop", sid))
		}
	}

	// With pickup/drop pairs the waypoint count must be 2x the shipment
	// count; anything else means a stop went missing at the boundary.
	if linked > 0 {
		shipments := map[string]struct{}{}
		for sid := range pickups {
			shipments[sid] = struct{}{}
		}
		for sid := range drops {
			shipments[sid] = struct{}{}
		}
		if len(waypoints) != 2*len(shipments) {
			errs = append(errs, fmt.Sprintf("expected %d waypoints for %d shipments, got %d", 2*len(shipments), len(shipments), len(waypoints)))
		}
	}

	return errs
}
