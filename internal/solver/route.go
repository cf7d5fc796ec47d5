package solver

import (
	"math"

	"fleetopt/internal/geo"
	"fleetopt/internal/model"
)

// Sequence orders stops into a visiting order using the greedy
// nearest-neighbor heuristic: from the current position, always travel next
// to the closest unvisited stop. Ties go to the stop that appears earliest
// in the input; that tie-break is part of the contract, callers rely on it
// for reproducibility.
//
// The result is an open path (it does not return to start) and is always a
// permutation of the input. O(n^2) in the stop count. Nearest-neighbor has
// no optimality bound; that is an accepted trade-off for speed, not a
// defect.
func Sequence(start model.Coordinate, stops []model.Stop) []model.Stop {
	ordered := make([]model.Stop, 0, len(stops))
	if len(stops) == 0 {
		return ordered
	}

	// Index arena over the input slice: a visited marker instead of
	// repeatedly reslicing a shrinking pool.
	visited := make([]bool, len(stops))
	current := start

	for range stops {
		next := -1
		minDist := math.MaxFloat64
		for i := range stops {
			if visited[i] {
				continue
			}
			// Strict < keeps the earliest unvisited stop on equal distances.
			if d := geo.Distance(current, stops[i].Coordinate); d < minDist {
				minDist = d
				next = i
			}
		}
		visited[next] = true
		ordered = append(ordered, stops[next])
		current = stops[next].Coordinate
	}
	return ordered
}
