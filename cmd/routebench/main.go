// README: Offline comparison runner; executes all four algorithms on the seed network.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"skyfare/internal/modules/airport"
	"skyfare/internal/modules/route"
)

func main() {
	cfg := loadConfig()

	results := runAll(cfg)

	fmt.Println("\n== Summary ==")
	pass, fail := 0, 0
	for _, r := range results {
		if r.Status == "PASS" {
			pass++
		} else {
			fail++
		}
	}
	fmt.Printf("PASS=%d FAIL=%d\n", pass, fail)

	if fail > 0 {
		os.Exit(1)
	}
}

type Config struct {
	Iterations int
	Verbose    bool
}

func loadConfig() Config {
	var cfg Config
	flag.IntVar(&cfg.Iterations, "iterations", envOrDefaultInt("SKYFARE_BENCH_ITERATIONS", 100), "Timing iterations per case")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Print every hop of every result")
	flag.Parse()
	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}
	return cfg
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

var algorithms = []route.Algorithm{
	route.AlgorithmDijkstra,
	route.AlgorithmAStar,
	route.AlgorithmBellmanFord,
	route.AlgorithmFloydWarshall,
}

// odPairs are the origin/destination cases; they cover direct links,
// multi-hop routes, and the same-airport degenerate case.
var odPairs = [][2]string{
	{"DEL", "BOM"},
	{"DEL", "MAA"},
	{"JAI", "CCU"},
	{"GOI", "MAA"},
	{"BLR", "BLR"},
}

func runAll(cfg Config) []Result {
	airports := airport.SeedAirports()
	conns := airport.SeedConnections()

	var results []Result
	for _, od := range odPairs {
		from, to := od[0], od[1]
		name := fmt.Sprintf("%s → %s", from, to)

		var reference float64
		var haveRef bool
		status, note := "PASS", ""

		for _, algo := range algorithms {
			start := time.Now()
			var res route.RouteResult
			var err error
			for i := 0; i < cfg.Iterations; i++ {
				res, err = route.ComputeRoute(airports, conns, from, to, algo)
			}
			perCall := time.Since(start) / time.Duration(cfg.Iterations)

			if err != nil {
				fmt.Printf("%-16s %-15s no route (%s)\n", name, algo, perCall)
				continue
			}
			fmt.Printf("%-16s %-15s %8.1f km  %d hops  (%s)\n",
				name, algo, res.TotalDistanceKm, len(res.Segments), perCall)
			if cfg.Verbose {
				for _, s := range res.Segments {
					fmt.Printf("    %s → %s  %.1f km\n", s.From, s.To, s.DistanceKm)
				}
			}

			if !haveRef {
				reference, haveRef = res.TotalDistanceKm, true
			} else if diff := res.TotalDistanceKm - reference; diff > 1e-6 || diff < -1e-6 {
				status = "FAIL"
				note = fmt.Sprintf("%s disagrees: %.3f vs %.3f", algo, res.TotalDistanceKm, reference)
			}
		}

		results = append(results, Result{Name: name, Status: status, Note: note})
		if note != "" {
			fmt.Printf("  !! %s\n", note)
		}
	}
	return results
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		_, _ = fmt.Sscanf(v, "%d", &n)
		if n > 0 {
			return n
		}
	}
	return def
}
