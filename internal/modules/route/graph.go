// README: Adjacency graph built per request from the airport catalogue.
package route

import "skyfare/internal/modules/airport"

// Edge is a directed weighted link inside a built graph.
type Edge struct {
	From       string
	To         string
	DistanceKm float64
}

// Graph is the ephemeral adjacency structure the algorithms consume. It is
// built fresh per request and never shared between calls.
type Graph struct {
	nodes map[string]airport.Airport
	order []string // insertion order, keeps matrix algorithms deterministic
	adj   map[string][]Edge
	edges []Edge // every directed edge in construction order
}

// NewGraph builds the adjacency structure. Every active connection is
// expanded into both directions with the same weight; an identical directed
// edge already present (same pair, same weight) is not added twice, so
// catalogues that store both directions explicitly are not double-counted.
// Inactive connections are excluded entirely. Construction never fails.
func NewGraph(airports []airport.Airport, conns []airport.Connection) *Graph {
	g := &Graph{
		nodes: make(map[string]airport.Airport, len(airports)),
		adj:   make(map[string][]Edge, len(airports)),
	}
	for _, a := range airports {
		if _, ok := g.nodes[a.Code]; ok {
			continue
		}
		g.nodes[a.Code] = a
		g.order = append(g.order, a.Code)
	}
	for _, c := range conns {
		if !c.Active {
			continue
		}
		g.addEdge(c.From, c.To, c.DistanceKm)
		g.addEdge(c.To, c.From, c.DistanceKm)
	}
	return g
}

func (g *Graph) addEdge(from, to string, km float64) {
	for _, e := range g.adj[from] {
		if e.To == to && e.DistanceKm == km {
			return
		}
	}
	e := Edge{From: from, To: to, DistanceKm: km}
	g.adj[from] = append(g.adj[from], e)
	g.edges = append(g.edges, e)
}

// Neighbors returns the outgoing edges of a node. Unknown codes yield an
// empty list; a node without edges is valid.
func (g *Graph) Neighbors(code string) []Edge {
	return g.adj[code]
}

// AllNodes returns every registered airport in insertion order.
func (g *Graph) AllNodes() []airport.Airport {
	nodes := make([]airport.Airport, 0, len(g.order))
	for _, code := range g.order {
		nodes = append(nodes, g.nodes[code])
	}
	return nodes
}

// Codes returns all node codes in insertion order.
func (g *Graph) Codes() []string {
	return g.order
}

// Edges returns every directed edge in construction order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

func (g *Graph) node(code string) (airport.Airport, bool) {
	a, ok := g.nodes[code]
	return a, ok
}

func (g *Graph) hasNode(code string) bool {
	_, ok := g.nodes[code]
	return ok
}

// firstEdge returns the first directed edge recorded between the ordered
// pair during construction. With parallel edges this is the documented
// tie-break for segment reconstruction.
func (g *Graph) firstEdge(from, to string) (Edge, bool) {
	for _, e := range g.adj[from] {
		if e.To == to {
			return e, true
		}
	}
	return Edge{}, false
}
