// README: Fare configuration, breakdown, and offer definitions.
package pricing

import "skyfare/internal/types"

// PriceConfig carries the per-request pricing knobs. The engine never
// mutates or persists it; negative rates are out of contract.
type PriceConfig struct {
	FuelPricePerLitre float64
	DefaultBurnLPerKm float64
	TaxRate           float64
	FeeRate           float64
	BaseFare          float64
	Currency          string
}

// FareBreakdown is computed once per quote and shared verbatim by all three
// offers; classes differ only by their multiplier on the combined total.
type FareBreakdown struct {
	Base     float64 `json:"base"`
	FuelCost float64 `json:"fuel_cost"`
	Ops      float64 `json:"ops"`
	Taxes    float64 `json:"taxes"`
	Demand   float64 `json:"demand"`
}

type FareClass string

const (
	ClassSaver    FareClass = "saver"
	ClassStandard FareClass = "standard"
	ClassFlex     FareClass = "flex"
)

// fareClasses fixes the three tiers and their quote order.
var fareClasses = []struct {
	Class      FareClass
	Multiplier float64
}{
	{ClassSaver, 0.95},
	{ClassStandard, 1.00},
	{ClassFlex, 1.15},
}

// Offer is one priced fare class. Ephemeral; generated per quote request.
type Offer struct {
	ID        types.ID      `json:"id"`
	Class     FareClass     `json:"class"`
	Breakdown FareBreakdown `json:"breakdown"`
	TotalFare types.Money   `json:"total_fare"`
}
