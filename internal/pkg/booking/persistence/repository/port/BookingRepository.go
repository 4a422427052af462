package repository

import (
	"context"

	booking "github.com/AnujYadav540/SkillSwap/internal/pkg/booking/domain"
)

// ErrNotFound is returned when no booking matches the id.
type ErrNotFound struct{}

func (ErrNotFound) Error() string { return "booking: not found" }

// ErrUnknownReceiver is returned by Insert when the receiver id references no
// user.
type ErrUnknownReceiver struct{}

func (ErrUnknownReceiver) Error() string { return "booking: receiver does not exist" }

// BookingRepository defines persistence operations for session requests.
type BookingRepository interface {
	Insert(ctx context.Context, b booking.Booking) (int64, error)
	FindByID(ctx context.Context, id int64) (*booking.Booking, error)
	// UpdateState performs the conditional state update that linearizes
	// concurrent transitions: the row changes only if its current status
	// equals expected. Returns false when the condition did not hold.
	UpdateState(ctx context.Context, id int64, expected, next booking.Status) (bool, error)
	// ListForUser returns every booking where the user is sender or
	// receiver, newest first, with both usernames resolved.
	ListForUser(ctx context.Context, userID int64) ([]booking.View, error)
}
