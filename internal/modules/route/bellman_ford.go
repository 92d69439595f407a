// README: Relaxation-based shortest path (Bellman-Ford).
package route

import "math"

// BellmanFord relaxes the full edge set for |V|−1 passes. It tolerates
// negative edge weights (the airport domain never produces them) and does
// not detect negative cycles; that omission is inherited deliberately.
func BellmanFord(g *Graph, from, to string) (RouteResult, error) {
	if !g.hasNode(from) || !g.hasNode(to) {
		return RouteResult{}, ErrNoRoute
	}
	if from == to {
		return singleNode(from), nil
	}

	dist := make(map[string]float64, len(g.Codes()))
	for _, code := range g.Codes() {
		dist[code] = math.Inf(1)
	}
	dist[from] = 0
	prev := make(map[string]string)

	edges := g.Edges()
	for pass := 0; pass < len(g.Codes())-1; pass++ {
		changed := false
		for _, e := range edges {
			if math.IsInf(dist[e.From], 1) {
				continue
			}
			if tentative := dist[e.From] + e.DistanceKm; tentative < dist[e.To] {
				dist[e.To] = tentative
				prev[e.To] = e.From
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	if math.IsInf(dist[to], 1) {
		return RouteResult{}, ErrNoRoute
	}
	return buildFromPredecessors(g, prev, from, to)
}
