package solver

import (
	"reflect"
	"testing"

	"fleetopt/internal/model"
)

func TestAllocateOverflowGoesUnassigned(t *testing.T) {
	// Concrete scenario: one 100kg vehicle, 60kg + 50kg shipments. The
	// heavier shipment fits; the second would overflow and is reported,
	// not dropped.
	vehicles := []model.Vehicle{{ID: "V1", CapacityKg: 100}}
	shipments := []model.Shipment{
		{ID: "S1", WeightKg: 60},
		{ID: "S2", WeightKg: 50},
	}

	alloc := Allocate(vehicles, shipments)
	if !reflect.DeepEqual(alloc.Assignments["V1"], []string{"S1"}) {
		t.Fatalf("V1 = %v, want [S1]", alloc.Assignments["V1"])
	}
	if !reflect.DeepEqual(alloc.Unassigned, []string{"S2"}) {
		t.Fatalf("unassigned = %v, want [S2]", alloc.Unassigned)
	}
}

func TestAllocateBestFitPrefersTightestVehicle(t *testing.T) {
	// A 40kg shipment fits both vehicles; best-fit picks the one with the
	// smaller remaining capacity, keeping the big vehicle free.
	vehicles := []model.Vehicle{
		{ID: "big", CapacityKg: 200},
		{ID: "small", CapacityKg: 50},
	}
	shipments := []model.Shipment{{ID: "S1", WeightKg: 40}}

	alloc := Allocate(vehicles, shipments)
	if len(alloc.Assignments["small"]) != 1 {
		t.Fatalf("assignments = %v, want S1 on small", alloc.Assignments)
	}
}

func TestAllocateTieGoesToEarliestVehicle(t *testing.T) {
	vehicles := []model.Vehicle{
		{ID: "V1", CapacityKg: 80},
		{ID: "V2", CapacityKg: 80},
	}
	shipments := []model.Shipment{{ID: "S1", WeightKg: 30}}

	alloc := Allocate(vehicles, shipments)
	if len(alloc.Assignments["V1"]) != 1 {
		t.Fatalf("assignments = %v, want S1 on V1", alloc.Assignments)
	}
}

func TestAllocateCapacityInvariantAndConservation(t *testing.T) {
	vehicles := []model.Vehicle{
		{ID: "V1", CapacityKg: 120},
		{ID: "V2", CapacityKg: 90},
		{ID: "V3", CapacityKg: 45},
	}
	shipments := []model.Shipment{
		{ID: "S1", WeightKg: 80},
		{ID: "S2", WeightKg: 70},
		{ID: "S3", WeightKg: 45},
		{ID: "S4", WeightKg: 40},
		{ID: "S5", WeightKg: 30},
		{ID: "S6", WeightKg: 200},
	}
	weights := map[string]float64{}
	for _, s := range shipments {
		weights[s.ID] = s.WeightKg
	}

	alloc := Allocate(vehicles, shipments)

	for _, v := range vehicles {
		sum := 0.0
		for _, sid := range alloc.Assignments[v.ID] {
			sum += weights[sid]
		}
		if sum > v.CapacityKg {
			t.Fatalf("vehicle %s overloaded: %v kg > %v kg", v.ID, sum, v.CapacityKg)
		}
	}

	// Every shipment lands in exactly one place.
	placed := map[string]int{}
	for _, ids := range alloc.Assignments {
		for _, sid := range ids {
			placed[sid]++
		}
	}
	for _, sid := range alloc.Unassigned {
		placed[sid]++
	}
	if len(placed) != len(shipments) {
		t.Fatalf("placed %d distinct shipments, want %d", len(placed), len(shipments))
	}
	for sid, n := range placed {
		if n != 1 {
			t.Fatalf("shipment %s placed %d times", sid, n)
		}
	}

	// The 200kg shipment fits nowhere.
	found := false
	for _, sid := range alloc.Unassigned {
		if sid == "S6" {
			found = true
		}
	}
	if !found {
		t.Fatalf("S6 should be unassigned, got %v", alloc.Unassigned)
	}
}

func TestAllocateDeterminism(t *testing.T) {
	vehicles := []model.Vehicle{
		{ID: "V1", CapacityKg: 100},
		{ID: "V2", CapacityKg: 100},
	}
	shipments := []model.Shipment{
		{ID: "S1", WeightKg: 50},
		{ID: "S2", WeightKg: 50},
		{ID: "S3", WeightKg: 50},
	}

	first := Allocate(vehicles, shipments)
	second := Allocate(vehicles, shipments)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("non-deterministic allocation: %+v vs %+v", first, second)
	}
}

func TestAllocateStableSortForEqualWeights(t *testing.T) {
	// Equal weights keep input order, so S1 is assigned first.
	vehicles := []model.Vehicle{{ID: "V1", CapacityKg: 50}}
	shipments := []model.Shipment{
		{ID: "S1", WeightKg: 50},
		{ID: "S2", WeightKg: 50},
	}

	alloc := Allocate(vehicles, shipments)
	if !reflect.DeepEqual(alloc.Assignments["V1"], []string{"S1"}) {
		t.Fatalf("V1 = %v, want [S1]", alloc.Assignments["V1"])
	}
	if !reflect.DeepEqual(alloc.Unassigned, []string{"S2"}) {
		t.Fatalf("unassigned = %v, want [S2]", alloc.Unassigned)
	}
}
