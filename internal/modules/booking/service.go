// README: Booking service implements state transitions and persistence.
package booking

import (
	"context"
	"errors"
	"time"

	"skyfare/internal/types"
)

var (
	ErrInvalidState = errors.New("invalid state transition")
	ErrNotFound     = errors.New("booking not found")
	ErrConflict     = errors.New("booking state conflict")
	ErrBadRequest   = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	UserID     types.ID
	Path       []string
	FareClass  string
	Passengers int
	TotalFare  types.Money
}

type ConfirmCommand struct {
	BookingID types.ID
}

type TicketCommand struct {
	BookingID types.ID
}

type CancelCommand struct {
	BookingID types.ID
	ActorType string
	Reason    string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	if cmd.UserID == "" || len(cmd.Path) < 1 || cmd.FareClass == "" || cmd.Passengers < 1 {
		return "", ErrBadRequest
	}

	b := &Booking{
		ID:            types.NewID(),
		UserID:        cmd.UserID,
		Path:          cmd.Path,
		FareClass:     cmd.FareClass,
		Passengers:    cmd.Passengers,
		TotalFare:     cmd.TotalFare,
		Status:        StatusReserved,
		StatusVersion: 0,
		CreatedAt:     time.Now(),
	}
	if err := s.store.Create(ctx, b); err != nil {
		return "", err
	}
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  b.ID,
		FromStatus: StatusNone,
		ToStatus:   StatusReserved,
		ActorType:  "passenger",
		CreatedAt:  b.CreatedAt,
	})
	return b.ID, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Booking, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Confirm(ctx context.Context, cmd ConfirmCommand) error {
	return s.transition(ctx, cmd.BookingID, StatusConfirmed, "passenger", nil)
}

func (s *Service) Ticket(ctx context.Context, cmd TicketCommand) error {
	return s.transition(ctx, cmd.BookingID, StatusTicketed, "system", nil)
}

func (s *Service) Cancel(ctx context.Context, cmd CancelCommand) error {
	reason := cmd.Reason
	return s.transition(ctx, cmd.BookingID, StatusCancelled, cmd.ActorType, &reason)
}

// transition performs a compare-and-swap status update so concurrent
// actions on the same booking cannot both win.
func (s *Service) transition(ctx context.Context, id types.ID, to Status, actorType string, reason *string) error {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanTransition(b.Status, to) {
		return ErrInvalidState
	}
	ok, err := s.store.UpdateStatus(ctx, b.ID, b.Status, to, b.StatusVersion, reason)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  b.ID,
		FromStatus: b.Status,
		ToStatus:   to,
		ActorType:  actorType,
		CreatedAt:  time.Now(),
	})
	return nil
}
