// README: Airport and connection definitions for the route network.
package airport

// Airport is a network node identified by its 3-letter IATA code.
type Airport struct {
	Code    string
	Name    string
	City    string
	Country string
	Lat     float64
	Lng     float64
}

// Connection is a stored link between two airports. Routes are logically
// bidirectional; graph construction expands each active connection into both
// directed edges. Inactive connections never enter the graph.
type Connection struct {
	From       string
	To         string
	DistanceKm float64
	Active     bool
}
