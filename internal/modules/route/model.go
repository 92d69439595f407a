// README: Route engine result types and algorithm selection.
package route

import "errors"

var (
	// ErrNoRoute covers both unknown endpoint codes and unreachable
	// destinations; the HTTP layer decides the user-facing message.
	ErrNoRoute          = errors.New("no route found")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Segment is one hop of a computed route.
type Segment struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
}

// RouteResult is the common output shape of all four search algorithms.
// TotalDistanceKm is always the sum of the segment distances.
type RouteResult struct {
	Path            []string  `json:"path"`
	Segments        []Segment `json:"segments"`
	TotalDistanceKm float64   `json:"total_distance_km"`
}

type Algorithm string

const (
	AlgorithmDijkstra      Algorithm = "dijkstra"
	AlgorithmAStar         Algorithm = "astar"
	AlgorithmBellmanFord   Algorithm = "bellman-ford"
	AlgorithmFloydWarshall Algorithm = "floyd-warshall"
)

// ParseAlgorithm maps a wire name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmDijkstra, AlgorithmAStar, AlgorithmBellmanFord, AlgorithmFloydWarshall:
		return Algorithm(s), nil
	}
	return "", ErrUnknownAlgorithm
}
