// README: All-pairs shortest path (Floyd-Warshall) with next-hop matrix.
package route

import "math"

// FloydWarshall computes the full |V|×|V| distance and next-hop matrices,
// then reconstructs the requested pair by following next-hop pointers. It is
// the most expensive choice for a single query; it is kept for completeness
// and as a cross-check against the single-source algorithms.
func FloydWarshall(g *Graph, from, to string) (RouteResult, error) {
	if !g.hasNode(from) || !g.hasNode(to) {
		return RouteResult{}, ErrNoRoute
	}
	if from == to {
		return singleNode(from), nil
	}

	codes := g.Codes()
	idx := make(map[string]int, len(codes))
	for i, c := range codes {
		idx[c] = i
	}

	n := len(codes)
	dist := make([][]float64, n)
	next := make([][]int, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		next[i] = make([]int, n)
		for j := range dist[i] {
			dist[i][j] = math.Inf(1)
			next[i][j] = -1
		}
		dist[i][i] = 0
		next[i][i] = i
	}
	for _, e := range g.Edges() {
		u, v := idx[e.From], idx[e.To]
		// Parallel edges: the matrix needs the minimum weight or the
		// triple loop would not be optimal.
		if e.DistanceKm < dist[u][v] {
			dist[u][v] = e.DistanceKm
			next[u][v] = v
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(dist[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
					next[i][j] = next[i][k]
				}
			}
		}
	}

	u, v := idx[from], idx[to]
	if next[u][v] == -1 {
		return RouteResult{}, ErrNoRoute
	}

	path := []string{from}
	for cur := u; cur != v; {
		cur = next[cur][v]
		path = append(path, codes[cur])
	}
	return buildFromPath(g, path)
}
