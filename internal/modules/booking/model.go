// README: Booking aggregate and status definitions.
package booking

import (
	"time"

	"skyfare/internal/types"
)

type Status string

const (
	StatusNone      Status = "none"
	StatusReserved  Status = "reserved"
	StatusConfirmed Status = "confirmed"
	StatusTicketed  Status = "ticketed"
	StatusCancelled Status = "cancelled"
)

type Booking struct {
	ID            types.ID
	UserID        types.ID
	Path          []string
	FareClass     string
	Passengers    int
	TotalFare     types.Money
	Status        Status
	StatusVersion int
	CreatedAt     time.Time
	ConfirmedAt   *time.Time
	TicketedAt    *time.Time
	CancelledAt   *time.Time
	CancelReason  *string
}

type Event struct {
	ID         int64
	BookingID  types.ID
	FromStatus Status
	ToStatus   Status
	ActorType  string
	CreatedAt  time.Time
}

// AllowedTransitions represents the booking state flow as code. Ticketed
// and cancelled are terminal.
var AllowedTransitions = map[Status][]Status{
	StatusReserved:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusTicketed, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
