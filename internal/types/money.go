// README: Common money value object used across modules.
package types

// Money is an amount in whole currency units (fares are rounded to tens,
// so no fractional unit is ever stored).
type Money struct {
	Amount   int64
	Currency string
}
