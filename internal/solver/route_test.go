package solver

import (
	"math"
	"reflect"
	"testing"
	"time"

	"fleetopt/internal/model"
)

func stop(id string, lat, lng float64) model.Stop {
	return model.Stop{Coordinate: model.Coordinate{Lat: lat, Lng: lng, ID: id}}
}

func TestSequenceEmptyAndSingle(t *testing.T) {
	start := model.Coordinate{Lat: 19.0760, Lng: 72.8777}

	if got := Sequence(start, nil); len(got) != 0 {
		t.Fatalf("empty input: got %d stops", len(got))
	}

	one := []model.Stop{stop("only", 19.1, 72.9)}
	got := Sequence(start, one)
	if len(got) != 1 || got[0].ID != "only" {
		t.Fatalf("single input: got %+v", got)
	}
}

func TestSequencePicksNearestFirst(t *testing.T) {
	// Concrete scenario: from Mumbai, A (19.10,72.90) is closer than
	// B (19.05,72.85), so A must come first.
	start := model.Coordinate{Lat: 19.0760, Lng: 72.8777}
	stops := []model.Stop{
		stop("A", 19.10, 72.90),
		stop("B", 19.05, 72.85),
	}

	got := Sequence(start, stops)
	if got[0].ID != "A" || got[1].ID != "B" {
		t.Fatalf("order = [%s %s], want [A B]", got[0].ID, got[1].ID)
	}

	route := BuildRoute(start, got, time.Now(), DefaultSpeedKmh)
	// start->A (~3.5515 km) + A->B (~7.6499 km)
	want := 3.5515 + 7.6499
	if math.Abs(route.TotalDistanceKm-want) > 0.01 {
		t.Fatalf("total = %.4f km, want ~%.4f", route.TotalDistanceKm, want)
	}
}

func TestSequencePermutation(t *testing.T) {
	start := model.Coordinate{Lat: 0, Lng: 0}
	stops := []model.Stop{
		stop("s1", 1.0, 1.0),
		stop("s2", -2.0, 0.5),
		stop("s3", 0.2, -0.7),
		stop("s4", 3.3, 2.1),
		stop("s5", -0.1, 0.1),
	}

	got := Sequence(start, stops)
	if len(got) != len(stops) {
		t.Fatalf("got %d stops, want %d", len(got), len(stops))
	}
	seen := map[string]int{}
	for _, s := range got {
		seen[s.ID]++
	}
	for _, s := range stops {
		if seen[s.ID] != 1 {
			t.Fatalf("stop %s appears %d times", s.ID, seen[s.ID])
		}
	}
}

func TestSequenceDeterministicTieBreak(t *testing.T) {
	start := model.Coordinate{Lat: 0, Lng: 0}
	// Two stops at identical distance from start; the earlier one wins.
	stops := []model.Stop{
		stop("east", 0, 1),
		stop("west", 0, -1),
	}

	got := Sequence(start, stops)
	if got[0].ID != "east" {
		t.Fatalf("tie-break picked %s, want east", got[0].ID)
	}

	again := Sequence(start, stops)
	if !reflect.DeepEqual(got, again) {
		t.Fatalf("non-deterministic: %+v vs %+v", got, again)
	}
}

func TestSequenceHandlesAntipodalStops(t *testing.T) {
	// A stop exactly opposite the current position must still be
	// selectable; the sequencer is total over in-range coordinates.
	start := model.Coordinate{Lat: -52.8151, Lng: 131.5206}
	only := []model.Stop{stop("antipode", 52.8151, -48.4794)}

	got := Sequence(start, only)
	if len(got) != 1 || got[0].ID != "antipode" {
		t.Fatalf("got %+v, want the antipodal stop", got)
	}

	// And with a closer alternative present, the antipode goes last.
	both := append([]model.Stop{stop("nearby", -52.0, 131.0)}, only...)
	got = Sequence(start, both)
	if len(got) != 2 || got[0].ID != "nearby" || got[1].ID != "antipode" {
		t.Fatalf("order = %+v, want [nearby antipode]", got)
	}
}

func TestSequenceDoesNotMutateInput(t *testing.T) {
	start := model.Coordinate{Lat: 0, Lng: 0}
	stops := []model.Stop{
		stop("far", 5, 5),
		stop("near", 0.1, 0.1),
	}
	orig := make([]model.Stop, len(stops))
	copy(orig, stops)

	_ = Sequence(start, stops)
	if !reflect.DeepEqual(stops, orig) {
		t.Fatalf("input mutated: %+v", stops)
	}
}
