package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	booking "github.com/AnujYadav540/SkillSwap/internal/pkg/booking/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/booking/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// CreateBookingInput carries a new session request. SessionDate and Notes are
// optional.
type CreateBookingInput struct {
	SenderID    int64
	ReceiverID  int64
	Skill       string
	SessionDate *time.Time
	Notes       string
}

// CreateBookingUseCase inserts a new request in the pending state. Repeated
// requests for the same pair and skill are deliberately not deduplicated.
type CreateBookingUseCase struct {
	Repo repository.BookingRepository
}

func NewCreateBookingUseCase(repo repository.BookingRepository) *CreateBookingUseCase {
	return &CreateBookingUseCase{Repo: repo}
}

func (uc *CreateBookingUseCase) Execute(ctx context.Context, in CreateBookingInput) (*booking.Booking, error) {
	in.Skill = strings.TrimSpace(in.Skill)
	if in.ReceiverID == 0 || in.Skill == "" {
		return nil, apperr.InvalidRequest("receiver id and skill are required")
	}
	if in.SenderID == in.ReceiverID {
		return nil, apperr.InvalidRequest("cannot book a session with yourself")
	}

	b := booking.Booking{
		SenderID:    in.SenderID,
		ReceiverID:  in.ReceiverID,
		Skill:       in.Skill,
		SessionDate: in.SessionDate,
		Notes:       in.Notes,
		Status:      booking.StatusPending,
	}
	id, err := uc.Repo.Insert(ctx, b)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownReceiver{}) {
			return nil, apperr.NotFound("receiver not found")
		}
		return nil, apperr.StoreUnavailable(err)
	}
	b.ID = id
	return &b, nil
}
