// README: Engine tests (graph construction + cross-algorithm properties).
package route

import (
	"math"
	"testing"

	"skyfare/internal/modules/airport"
)

var allAlgorithms = []struct {
	name string
	run  func(*Graph, string, string) (RouteResult, error)
}{
	{"dijkstra", Dijkstra},
	{"astar", AStar},
	{"bellman-ford", BellmanFord},
	{"floyd-warshall", FloydWarshall},
}

func seedGraph() *Graph {
	return NewGraph(airport.SeedAirports(), airport.SeedConnections())
}

func TestNewGraph_BidirectionalExpansion(t *testing.T) {
	airports := []airport.Airport{{Code: "AAA"}, {Code: "BBB"}}
	g := NewGraph(airports, []airport.Connection{
		{From: "AAA", To: "BBB", DistanceKm: 100, Active: true},
	})

	if n := len(g.Neighbors("AAA")); n != 1 {
		t.Errorf("AAA neighbors = %d, want 1", n)
	}
	if n := len(g.Neighbors("BBB")); n != 1 {
		t.Errorf("reverse edge missing: BBB neighbors = %d, want 1", n)
	}
}

func TestNewGraph_NoDoubleAddWhenBothDirectionsStored(t *testing.T) {
	airports := []airport.Airport{{Code: "AAA"}, {Code: "BBB"}}
	g := NewGraph(airports, []airport.Connection{
		{From: "AAA", To: "BBB", DistanceKm: 100, Active: true},
		{From: "BBB", To: "AAA", DistanceKm: 100, Active: true},
	})

	if n := len(g.Neighbors("AAA")); n != 1 {
		t.Errorf("AAA neighbors = %d, want 1 (identical reverse edge must not double-add)", n)
	}
	if n := len(g.Edges()); n != 2 {
		t.Errorf("total directed edges = %d, want 2", n)
	}
}

func TestNewGraph_InactiveExcluded(t *testing.T) {
	airports := []airport.Airport{{Code: "AAA"}, {Code: "BBB"}}
	g := NewGraph(airports, []airport.Connection{
		{From: "AAA", To: "BBB", DistanceKm: 100, Active: false},
	})

	if n := len(g.Neighbors("AAA")) + len(g.Neighbors("BBB")); n != 0 {
		t.Errorf("inactive connection produced %d edges", n)
	}

	for _, algo := range allAlgorithms {
		if _, err := algo.run(g, "AAA", "BBB"); err != ErrNoRoute {
			t.Errorf("%s: expected ErrNoRoute over inactive link, got %v", algo.name, err)
		}
	}
}

func TestNewGraph_UnknownCodeNeighbors(t *testing.T) {
	g := seedGraph()
	if n := g.Neighbors("ZZZ"); len(n) != 0 {
		t.Errorf("unknown code returned %d neighbors", len(n))
	}
}

func TestAlgorithms_AgreeOnSeedNetwork(t *testing.T) {
	g := seedGraph()
	codes := g.Codes()

	for _, from := range codes {
		for _, to := range codes {
			want, wantErr := Dijkstra(g, from, to)
			for _, algo := range allAlgorithms[1:] {
				got, err := algo.run(g, from, to)
				if (err == nil) != (wantErr == nil) {
					t.Fatalf("%s(%s,%s): err = %v, dijkstra err = %v", algo.name, from, to, err, wantErr)
				}
				if err != nil {
					continue
				}
				if math.Abs(got.TotalDistanceKm-want.TotalDistanceKm) > 1e-6 {
					t.Errorf("%s(%s,%s): total = %f, dijkstra = %f",
						algo.name, from, to, got.TotalDistanceKm, want.TotalDistanceKm)
				}
			}
		}
	}
}

func TestAlgorithms_ResultShape(t *testing.T) {
	g := seedGraph()
	for _, algo := range allAlgorithms {
		t.Run(algo.name, func(t *testing.T) {
			res, err := algo.run(g, "JAI", "MAA")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Path[0] != "JAI" || res.Path[len(res.Path)-1] != "MAA" {
				t.Errorf("path endpoints wrong: %v", res.Path)
			}
			if len(res.Path) != len(res.Segments)+1 {
				t.Errorf("path length %d != segments+1 (%d)", len(res.Path), len(res.Segments)+1)
			}
			var sum float64
			for _, s := range res.Segments {
				sum += s.DistanceKm
			}
			if math.Abs(sum-res.TotalDistanceKm) > 1e-9 {
				t.Errorf("total %f != segment sum %f", res.TotalDistanceKm, sum)
			}
		})
	}
}

func TestAlgorithms_SameStartAndEnd(t *testing.T) {
	g := seedGraph()
	for _, algo := range allAlgorithms {
		res, err := algo.run(g, "DEL", "DEL")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", algo.name, err)
		}
		if len(res.Path) != 1 || res.Path[0] != "DEL" {
			t.Errorf("%s: path = %v, want [DEL]", algo.name, res.Path)
		}
		if len(res.Segments) != 0 || res.TotalDistanceKm != 0 {
			t.Errorf("%s: expected zero segments and distance, got %v / %f",
				algo.name, res.Segments, res.TotalDistanceKm)
		}
	}
}

func TestAlgorithms_UnknownAndUnreachable(t *testing.T) {
	airports := append(airport.SeedAirports(), airport.Airport{Code: "IXZ", City: "Port Blair"})
	conns := airport.SeedConnections() // IXZ has no connections

	for _, algo := range allAlgorithms {
		if _, err := computeWith(algo.run, airports, conns, "DEL", "XXX"); err != ErrNoRoute {
			t.Errorf("%s: unknown destination: got %v, want ErrNoRoute", algo.name, err)
		}
		if _, err := computeWith(algo.run, airports, conns, "XXX", "DEL"); err != ErrNoRoute {
			t.Errorf("%s: unknown origin: got %v, want ErrNoRoute", algo.name, err)
		}
		if _, err := computeWith(algo.run, airports, conns, "DEL", "IXZ"); err != ErrNoRoute {
			t.Errorf("%s: isolated node: got %v, want ErrNoRoute", algo.name, err)
		}
	}
}

// computeWith mirrors ComputeRoute for a specific algorithm function.
func computeWith(run func(*Graph, string, string) (RouteResult, error), airports []airport.Airport, conns []airport.Connection, from, to string) (RouteResult, error) {
	return run(NewGraph(airports, conns), from, to)
}

func TestDijkstra_DelhiMumbaiScenario(t *testing.T) {
	res, err := ComputeRoute(airport.SeedAirports(), airport.SeedConnections(), "DEL", "BOM", AlgorithmDijkstra)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Path) != 2 || res.Path[0] != "DEL" || res.Path[1] != "BOM" {
		t.Fatalf("path = %v, want [DEL BOM]", res.Path)
	}
	if len(res.Segments) != 1 {
		t.Fatalf("segments = %d, want 1", len(res.Segments))
	}
	if math.Abs(res.TotalDistanceKm-1138) > 15 {
		t.Errorf("total distance = %f, want ≈1138", res.TotalDistanceKm)
	}
}

func TestAlgorithms_PreferMultiHopWhenShorter(t *testing.T) {
	airports := []airport.Airport{{Code: "AAA"}, {Code: "BBB"}, {Code: "CCC"}}
	conns := []airport.Connection{
		{From: "AAA", To: "CCC", DistanceKm: 500, Active: true},
		{From: "AAA", To: "BBB", DistanceKm: 100, Active: true},
		{From: "BBB", To: "CCC", DistanceKm: 100, Active: true},
	}
	for _, algo := range allAlgorithms {
		res, err := computeWith(algo.run, airports, conns, "AAA", "CCC")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", algo.name, err)
		}
		if len(res.Path) != 3 || res.TotalDistanceKm != 200 {
			t.Errorf("%s: path = %v (%.0f km), want AAA-BBB-CCC at 200 km",
				algo.name, res.Path, res.TotalDistanceKm)
		}
	}
}

func TestBellmanFord_NegativeWeights(t *testing.T) {
	// Outside the airport domain, but the relaxation algorithm must stay
	// correct when a weight goes negative.
	airports := []airport.Airport{{Code: "AAA"}, {Code: "BBB"}, {Code: "CCC"}}
	g := NewGraph(airports, nil)
	g.addEdge("AAA", "BBB", 10)
	g.addEdge("BBB", "CCC", -4)
	g.addEdge("AAA", "CCC", 8)

	res, err := BellmanFord(g, "AAA", "CCC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalDistanceKm != 6 {
		t.Errorf("total = %f, want 6 via BBB", res.TotalDistanceKm)
	}
}

func TestParallelEdges_FirstEncounteredWins(t *testing.T) {
	airports := []airport.Airport{{Code: "AAA"}, {Code: "BBB"}}
	g := NewGraph(airports, nil)
	g.addEdge("AAA", "BBB", 300)
	g.addEdge("AAA", "BBB", 100)

	e, ok := g.firstEdge("AAA", "BBB")
	if !ok {
		t.Fatal("edge lookup failed")
	}
	if e.DistanceKm != 300 {
		t.Errorf("firstEdge weight = %f, want the first recorded (300)", e.DistanceKm)
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, name := range []string{"dijkstra", "astar", "bellman-ford", "floyd-warshall"} {
		if _, err := ParseAlgorithm(name); err != nil {
			t.Errorf("ParseAlgorithm(%q) = %v", name, err)
		}
	}
	if _, err := ParseAlgorithm("quantum"); err != ErrUnknownAlgorithm {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}
