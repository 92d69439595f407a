// README: Fare engine; deterministic breakdown plus simulated demand jitter.
package pricing

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"skyfare/internal/types"
)

const (
	demandFloor   = 0.9
	demandCeil    = 1.5
	popularFactor = 1.2
)

// popularRoutes get the elevated starting demand factor. Keys are
// origin-destination code pairs.
var popularRoutes = map[string]bool{
	"DEL-BOM": true,
	"BOM-DEL": true,
	"DEL-BLR": true,
	"BLR-DEL": true,
	"BOM-BLR": true,
	"BLR-BOM": true,
}

type Service struct {
	store  *Store
	jitter func() float64 // uniform in [0,1)
}

// NewService builds the fare engine. jitter is the random source behind the
// demand factor; nil selects the shared math/rand generator. Tests inject a
// fixed function to make quotes reproducible.
func NewService(store *Store, jitter func() float64) *Service {
	if jitter == nil {
		jitter = rand.Float64
	}
	return &Service{store: store, jitter: jitter}
}

// GenerateQuote prices a computed path for the given passenger count. It
// always returns exactly three offers in Saver/Standard/Flex order sharing
// one FareBreakdown. Zero or negative distance is valid input and prices as
// base + ops + taxes only. The method never fails on domain input.
func (s *Service) GenerateQuote(ctx context.Context, path []string, totalDistanceKm float64, passengers int, cfg PriceConfig) []Offer {
	if passengers < 1 {
		passengers = 1
	}
	currency := cfg.Currency
	if currency == "" {
		currency = "INR"
	}

	base := cfg.BaseFare
	fuelCost := totalDistanceKm * cfg.DefaultBurnLPerKm * cfg.FuelPricePerLitre
	ops := cfg.FeeRate * (base + fuelCost)
	taxes := cfg.TaxRate * (base + fuelCost + ops)
	demand := s.demandFactor(path)

	breakdown := FareBreakdown{
		Base:     base,
		FuelCost: fuelCost,
		Ops:      ops,
		Taxes:    taxes,
		Demand:   demand,
	}
	corePrice := (base + fuelCost + ops + taxes) * demand

	offers := make([]Offer, 0, len(fareClasses))
	for _, fc := range fareClasses {
		total := roundToNearest10(corePrice*fc.Multiplier) * int64(passengers)
		if total < 0 {
			// Misconfigured (negative) rates must not surface as a
			// negative fare; clamp and let upstream validation catch it.
			total = 0
		}
		offers = append(offers, Offer{
			ID:        types.NewID(),
			Class:     fc.Class,
			Breakdown: breakdown,
			TotalFare: types.Money{Amount: total, Currency: currency},
		})
	}

	if s.store != nil {
		// Quote audit is best-effort; a storage hiccup must not block the quote.
		_ = s.store.AppendQuote(ctx, QuoteRecord{
			QuoteID:   offers[1].ID, // the standard-class offer identifies the quote
			Path:      path,
			CorePrice: corePrice,
			Demand:    demand,
			CreatedAt: time.Now(),
		})
	}
	return offers
}

// demandFactor simulates real-time demand: popular routes start at 1.2,
// everything else at 1.0, scaled by a jitter draw from [0.9, 1.3] and
// clamped to [0.9, 1.5].
func (s *Service) demandFactor(path []string) float64 {
	factor := 1.0
	if len(path) >= 2 && popularRoutes[path[0]+"-"+path[len(path)-1]] {
		factor = popularFactor
	}
	factor *= 0.9 + s.jitter()*0.4
	return clamp(factor, demandFloor, demandCeil)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// roundToNearest10 rounds a currency amount to the nearest multiple of 10.
func roundToNearest10(v float64) int64 {
	return int64(math.Round(v/10) * 10)
}
