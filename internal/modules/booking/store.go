// README: Booking store backed by PostgreSQL.
package booking

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"skyfare/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, b *Booking) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO bookings (
			id, user_id, path, fare_class, passengers,
			total_fare, currency, status, status_version, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		string(b.ID),
		string(b.UserID),
		strings.Join(b.Path, "-"),
		b.FareClass,
		b.Passengers,
		b.TotalFare.Amount,
		b.TotalFare.Currency,
		string(b.Status),
		b.StatusVersion,
		b.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, path, fare_class, passengers,
		       total_fare, currency, status, status_version,
		       created_at, confirmed_at, ticketed_at, cancelled_at, cancel_reason
		FROM bookings
		WHERE id = $1`, string(id),
	)

	var b Booking
	var path string
	var confirmedAt, ticketedAt, cancelledAt sql.NullTime
	var cancelReason sql.NullString

	err := row.Scan(
		&b.ID, &b.UserID, &path, &b.FareClass, &b.Passengers,
		&b.TotalFare.Amount, &b.TotalFare.Currency, &b.Status, &b.StatusVersion,
		&b.CreatedAt, &confirmedAt, &ticketedAt, &cancelledAt, &cancelReason,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	b.Path = strings.Split(path, "-")
	b.ConfirmedAt = toTimePtr(confirmedAt)
	b.TicketedAt = toTimePtr(ticketedAt)
	b.CancelledAt = toTimePtr(cancelledAt)
	if cancelReason.Valid {
		b.CancelReason = &cancelReason.String
	}
	return &b, nil
}

// UpdateStatus applies a transition only if the stored status and version
// still match what the caller read. Reports whether the swap happened.
func (s *Store) UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, reason *string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE bookings
		SET status = $1,
		    status_version = status_version + 1,
		    confirmed_at = CASE WHEN $1 = 'confirmed' THEN NOW() ELSE confirmed_at END,
		    ticketed_at  = CASE WHEN $1 = 'ticketed'  THEN NOW() ELSE ticketed_at END,
		    cancelled_at = CASE WHEN $1 = 'cancelled' THEN NOW() ELSE cancelled_at END,
		    cancel_reason = COALESCE($2, cancel_reason)
		WHERE id = $3 AND status = $4 AND status_version = $5`,
		string(to), reason, string(id), string(from), version,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) AppendEvent(ctx context.Context, e *Event) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO booking_events (booking_id, from_status, to_status, actor_type, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		string(e.BookingID), string(e.FromStatus), string(e.ToStatus), e.ActorType, e.CreatedAt,
	)
	return err
}

func toTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
