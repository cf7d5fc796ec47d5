package model

import "time"

// Stop kinds for shipment-linked waypoints.
const (
	KindPickup = "pickup"
	KindDrop   = "drop"
)

// Coordinate is a geographic point. Passed by value everywhere; never mutated.
type Coordinate struct {
	Lat float64 `json:"latitude" validate:"latitude"`
	Lng float64 `json:"longitude" validate:"longitude"`
	ID  string  `json:"id,omitempty"`
}

// Stop is a Coordinate tagged with routing metadata. Kind and ShipmentID are
// optional; when present they link the stop to a shipment for
// pickup-before-drop validation.
type Stop struct {
	Coordinate
	Kind       string `json:"kind,omitempty" validate:"omitempty,oneof=pickup drop"`
	ShipmentID string `json:"shipmentId,omitempty"`
}

// OptimizeRequest is the payload for POST /optimize.
type OptimizeRequest struct {
	Start    Coordinate `json:"start"`
	Stops    []Stop     `json:"stops" validate:"dive"`
	DepartAt *time.Time `json:"departAt,omitempty"`
}

// Waypoint is a sequenced stop in a finalized route. Created only while a
// route response is being built and never mutated afterwards.
type Waypoint struct {
	Order                  int        `json:"order"`
	ID                     string     `json:"id,omitempty"`
	Kind                   string     `json:"kind,omitempty"`
	ShipmentID             string     `json:"shipmentId,omitempty"`
	Coordinate             Coordinate `json:"coordinate"`
	DistanceFromPreviousKm float64    `json:"distanceFromPreviousKm"`
	EstimatedArrival       time.Time  `json:"estimatedArrival"`
}

// OptimizedRoute is the full result of sequencing plus metrics and
// validation. Validation findings are data, not failures: a logically
// inconsistent route is still returned with IsValid=false.
type OptimizedRoute struct {
	Waypoints       []Waypoint `json:"waypoints"`
	TotalDistanceKm float64    `json:"totalDistanceKm"`
	TotalTimeHours  float64    `json:"totalTimeHours"`
	IsValid         bool       `json:"isValid"`
	Errors          []string   `json:"errors"`
}

// Shipment is a weighted load to be carried by a vehicle.
type Shipment struct {
	ID       string  `json:"id" validate:"required"`
	WeightKg float64 `json:"weightKg" validate:"gt=0"`
}

// Vehicle is a capacity-constrained bin.
type Vehicle struct {
	ID         string  `json:"id" validate:"required"`
	CapacityKg float64 `json:"capacityKg" validate:"gt=0"`
}

// LoadRequest is the payload for POST /optimize-load.
type LoadRequest struct {
	Vehicles  []Vehicle  `json:"vehicles" validate:"dive"`
	Shipments []Shipment `json:"shipments" validate:"dive"`
}

// Allocation maps each vehicle to the shipments it carries, in assignment
// order. Shipments that fit no vehicle land in Unassigned; that is a normal
// outcome, not an error.
type Allocation struct {
	Assignments map[string][]string `json:"assignments"`
	Unassigned  []string            `json:"unassigned"`
}
