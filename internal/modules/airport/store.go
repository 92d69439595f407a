// README: Airport catalogue store backed by PostgreSQL.
package airport

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("airport not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) ListAirports(ctx context.Context) ([]Airport, error) {
	rows, err := s.db.Query(ctx, `
		SELECT code, name, city, country, lat, lng
		FROM airports
		ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var airports []Airport
	for rows.Next() {
		var a Airport
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.Lat, &a.Lng); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (s *Store) GetAirport(ctx context.Context, code string) (Airport, error) {
	var a Airport
	err := s.db.QueryRow(ctx, `
		SELECT code, name, city, country, lat, lng
		FROM airports
		WHERE code = $1`, code,
	).Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.Lat, &a.Lng)
	if errors.Is(err, pgx.ErrNoRows) {
		return Airport{}, ErrNotFound
	}
	return a, err
}

func (s *Store) CreateAirport(ctx context.Context, a Airport) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO airports (code, name, city, country, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (code) DO UPDATE
		SET name = $2, city = $3, country = $4, lat = $5, lng = $6`,
		a.Code, a.Name, a.City, a.Country, a.Lat, a.Lng,
	)
	return err
}

func (s *Store) ListConnections(ctx context.Context) ([]Connection, error) {
	rows, err := s.db.Query(ctx, `
		SELECT from_code, to_code, distance_km, active
		FROM connections
		ORDER BY from_code, to_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conns []Connection
	for rows.Next() {
		var c Connection
		if err := rows.Scan(&c.From, &c.To, &c.DistanceKm, &c.Active); err != nil {
			return nil, err
		}
		conns = append(conns, c)
	}
	return conns, rows.Err()
}

func (s *Store) CreateConnection(ctx context.Context, c Connection) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO connections (from_code, to_code, distance_km, active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (from_code, to_code) DO UPDATE
		SET distance_km = $3, active = $4`,
		c.From, c.To, c.DistanceKm, c.Active,
	)
	return err
}

// SetConnectionActive toggles a link for the admin console. Reports whether
// a row was updated.
func (s *Store) SetConnectionActive(ctx context.Context, from, to string, active bool) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE connections
		SET active = $1
		WHERE from_code = $2 AND to_code = $3`,
		active, from, to,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
