// README: Booking state machine and flow tests.
package booking

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"skyfare/internal/types"
)

// TestCanTransition verifies the state machine transition table without a database.
func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		// happy-path forward transitions
		{StatusReserved, StatusConfirmed, true},
		{StatusConfirmed, StatusTicketed, true},
		// cancels from every non-terminal state
		{StatusReserved, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		// invalid: terminal states have no outgoing transitions
		{StatusTicketed, StatusReserved, false},
		{StatusTicketed, StatusCancelled, false},
		{StatusCancelled, StatusReserved, false},
		// invalid: skipping states
		{StatusReserved, StatusTicketed, false},
		{StatusConfirmed, StatusReserved, false},
	}
	for _, tc := range cases {
		got := CanTransition(tc.from, tc.to)
		if got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("SKYFARE_DB_DSN")
	if dsn == "" {
		t.Skip("SKYFARE_DB_DSN not set; skipping integration test")
	}
	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(db.Close)
	return NewStore(db)
}

func TestBookingFlowHappyPath(t *testing.T) {
	svc := NewService(setupTestStore(t))
	ctx := context.Background()

	id, err := svc.Create(ctx, CreateCommand{
		UserID:     "u_happy",
		Path:       []string{"DEL", "BOM"},
		FareClass:  "standard",
		Passengers: 1,
		TotalFare:  types.Money{Amount: 253910, Currency: "INR"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	assertStatus(t, svc, id, StatusReserved)

	if err := svc.Confirm(ctx, ConfirmCommand{BookingID: id}); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	assertStatus(t, svc, id, StatusConfirmed)

	if err := svc.Ticket(ctx, TicketCommand{BookingID: id}); err != nil {
		t.Fatalf("ticket: %v", err)
	}
	assertStatus(t, svc, id, StatusTicketed)

	// Terminal: further transitions must be rejected.
	if err := svc.Cancel(ctx, CancelCommand{BookingID: id, ActorType: "passenger", Reason: "late"}); err != ErrInvalidState {
		t.Errorf("cancel after ticketing: got %v, want ErrInvalidState", err)
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	cases := []CreateCommand{
		{UserID: "", Path: []string{"DEL", "BOM"}, FareClass: "saver", Passengers: 1},
		{UserID: "u1", Path: nil, FareClass: "saver", Passengers: 1},
		{UserID: "u1", Path: []string{"DEL", "BOM"}, FareClass: "", Passengers: 1},
		{UserID: "u1", Path: []string{"DEL", "BOM"}, FareClass: "saver", Passengers: 0},
	}
	for i, cmd := range cases {
		if _, err := svc.Create(ctx, cmd); err != ErrBadRequest {
			t.Errorf("case %d: got %v, want ErrBadRequest", i, err)
		}
	}
}

func assertStatus(t *testing.T, svc *Service, id types.ID, want Status) {
	t.Helper()
	b, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get booking: %v", err)
	}
	if b.Status != want {
		t.Fatalf("status = %s, want %s", b.Status, want)
	}
}
