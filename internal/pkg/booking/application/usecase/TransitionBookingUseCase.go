package usecase

import (
	"context"
	"errors"

	booking "github.com/AnujYadav540/SkillSwap/internal/pkg/booking/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/booking/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// TransitionBookingInput names the booking, the acting user, and the target
// state.
type TransitionBookingInput struct {
	BookingID   int64
	ActorID     int64
	TargetState string
}

// TransitionBookingUseCase drives the booking state machine. Accept and
// reject belong to the receiver; complete belongs to either party and only
// from accepted. The store's conditional update decides races: a losing
// concurrent caller observes an invalid transition, never a silent overwrite.
type TransitionBookingUseCase struct {
	Repo repository.BookingRepository
}

func NewTransitionBookingUseCase(repo repository.BookingRepository) *TransitionBookingUseCase {
	return &TransitionBookingUseCase{Repo: repo}
}

func (uc *TransitionBookingUseCase) Execute(ctx context.Context, in TransitionBookingInput) (*booking.Booking, error) {
	target, ok := booking.ParseTargetStatus(in.TargetState)
	if !ok {
		return nil, apperr.InvalidRequest("status must be accepted, rejected, or completed")
	}

	b, err := uc.Repo.FindByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound{}) {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, apperr.StoreUnavailable(err)
	}

	switch target {
	case booking.StatusAccepted, booking.StatusRejected:
		if in.ActorID != b.ReceiverID {
			return nil, apperr.Unauthorized("only the receiver can accept or reject a booking")
		}
	case booking.StatusCompleted:
		if !b.IsParty(in.ActorID) {
			return nil, apperr.Unauthorized("only a participant can complete a booking")
		}
	}

	if !b.Status.CanTransitionTo(target) {
		if b.Status.Terminal() {
			return nil, apperr.InvalidTransition("booking is already " + string(b.Status))
		}
		return nil, apperr.InvalidTransition("cannot move booking from " + string(b.Status) + " to " + string(target))
	}

	applied, err := uc.Repo.UpdateState(ctx, b.ID, b.Status, target)
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	if !applied {
		// Lost a race: someone else moved the booking first.
		return nil, apperr.InvalidTransition("booking state changed concurrently")
	}

	b.Status = target
	return b, nil
}
