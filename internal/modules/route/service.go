// README: Route service; pure engine entry point plus optional result cache.
package route

import (
	"context"

	"skyfare/internal/modules/airport"
)

// ComputeRoute builds a fresh graph from the supplied catalogue and runs the
// selected algorithm. It is pure computation: no I/O, no state across calls,
// safe to run concurrently.
func ComputeRoute(airports []airport.Airport, conns []airport.Connection, from, to string, algo Algorithm) (RouteResult, error) {
	g := NewGraph(airports, conns)
	switch algo {
	case AlgorithmDijkstra:
		return Dijkstra(g, from, to)
	case AlgorithmAStar:
		return AStar(g, from, to)
	case AlgorithmBellmanFord:
		return BellmanFord(g, from, to)
	case AlgorithmFloydWarshall:
		return FloydWarshall(g, from, to)
	}
	return RouteResult{}, ErrUnknownAlgorithm
}

// Service fronts the engine for the HTTP layer. The store is optional; with
// a nil store every request is computed from scratch.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) ComputeRoute(ctx context.Context, airports []airport.Airport, conns []airport.Connection, from, to string, algo Algorithm) (RouteResult, error) {
	if s.store != nil {
		if res, ok := s.store.GetCached(ctx, from, to, algo); ok {
			return res, nil
		}
	}
	res, err := ComputeRoute(airports, conns, from, to, algo)
	if err != nil {
		return RouteResult{}, err
	}
	if s.store != nil {
		// Cache failures are not the caller's problem.
		_ = s.store.PutCached(ctx, from, to, algo, res)
	}
	return res, nil
}
