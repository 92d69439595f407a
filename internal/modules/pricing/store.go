// README: Pricing store backed by PostgreSQL (active config + quote audit log).
package pricing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"skyfare/internal/types"
)

var ErrNoConfig = errors.New("no active price config")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// QuoteRecord is one audit row per generated quote.
type QuoteRecord struct {
	QuoteID   types.ID
	Path      []string
	CorePrice float64
	Demand    float64
	CreatedAt time.Time
}

// GetActiveConfig loads the single active pricing row.
func (s *Store) GetActiveConfig(ctx context.Context) (PriceConfig, error) {
	var cfg PriceConfig
	err := s.db.QueryRow(ctx, `
		SELECT fuel_price_per_litre, default_burn_l_per_km, tax_rate, fee_rate, base_fare, currency
		FROM price_configs
		WHERE active
		ORDER BY updated_at DESC
		LIMIT 1`,
	).Scan(&cfg.FuelPricePerLitre, &cfg.DefaultBurnLPerKm, &cfg.TaxRate, &cfg.FeeRate, &cfg.BaseFare, &cfg.Currency)
	if errors.Is(err, pgx.ErrNoRows) {
		return PriceConfig{}, ErrNoConfig
	}
	return cfg, err
}

// SaveConfig replaces the active pricing row (admin console).
func (s *Store) SaveConfig(ctx context.Context, cfg PriceConfig) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `UPDATE price_configs SET active = FALSE WHERE active`); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO price_configs (fuel_price_per_litre, default_burn_l_per_km, tax_rate, fee_rate, base_fare, currency, active, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW())`,
		cfg.FuelPricePerLitre, cfg.DefaultBurnLPerKm, cfg.TaxRate, cfg.FeeRate, cfg.BaseFare, cfg.Currency,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) AppendQuote(ctx context.Context, q QuoteRecord) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO quote_log (quote_id, path, core_price, demand, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		string(q.QuoteID), strings.Join(q.Path, "-"), q.CorePrice, q.Demand, q.CreatedAt,
	)
	return err
}
