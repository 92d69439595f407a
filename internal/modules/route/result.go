// README: Shared path/segment reconstruction for all four algorithms.
package route

// buildFromPredecessors walks a predecessor map backwards from the
// destination and resolves the resulting path into segments.
func buildFromPredecessors(g *Graph, prev map[string]string, from, to string) (RouteResult, error) {
	path := []string{to}
	for cur := to; cur != from; {
		p, ok := prev[cur]
		if !ok {
			return RouteResult{}, ErrNoRoute
		}
		path = append([]string{p}, path...)
		cur = p
	}
	return buildFromPath(g, path)
}

// buildFromPath turns an ordered code sequence into the common result shape.
// Each hop resolves to the first matching directed edge recorded at graph
// construction; the total is accumulated from the segments themselves.
func buildFromPath(g *Graph, path []string) (RouteResult, error) {
	res := RouteResult{Path: path, Segments: []Segment{}}
	for i := 0; i+1 < len(path); i++ {
		e, ok := g.firstEdge(path[i], path[i+1])
		if !ok {
			return RouteResult{}, ErrNoRoute
		}
		res.Segments = append(res.Segments, Segment{From: e.From, To: e.To, DistanceKm: e.DistanceKm})
		res.TotalDistanceKm += e.DistanceKm
	}
	return res, nil
}

// singleNode is the degenerate same-origin-and-destination result.
func singleNode(code string) RouteResult {
	return RouteResult{Path: []string{code}, Segments: []Segment{}}
}
