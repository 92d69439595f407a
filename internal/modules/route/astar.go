// README: Heuristic-guided shortest path (A*) with great-circle heuristic.
package route

import (
	"container/heap"

	"skyfare/internal/geo"
)

// AStar orders the frontier by g-score plus the great-circle distance to the
// destination. Straight-line distance never exceeds actual route distance,
// so the heuristic is admissible and results match Dijkstra on any graph
// with non-negative weights.
func AStar(g *Graph, from, to string) (RouteResult, error) {
	if !g.hasNode(from) || !g.hasNode(to) {
		return RouteResult{}, ErrNoRoute
	}
	if from == to {
		return singleNode(from), nil
	}

	goal, _ := g.node(to)
	heuristic := func(code string) float64 {
		a, _ := g.node(code)
		return geo.HaversineKm(a.Lat, a.Lng, goal.Lat, goal.Lng)
	}

	gScore := map[string]float64{from: 0}
	prev := make(map[string]string)
	closed := make(map[string]bool)

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{code: from, priority: heuristic(from)})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		current := item.code
		if closed[current] {
			continue
		}
		closed[current] = true
		if current == to {
			return buildFromPredecessors(g, prev, from, to)
		}

		for _, e := range g.Neighbors(current) {
			if closed[e.To] {
				continue
			}
			tentative := gScore[current] + e.DistanceKm
			if old, ok := gScore[e.To]; !ok || tentative < old {
				gScore[e.To] = tentative
				prev[e.To] = current
				heap.Push(pq, &pqItem{code: e.To, priority: tentative + heuristic(e.To)})
			}
		}
	}

	return RouteResult{}, ErrNoRoute
}
