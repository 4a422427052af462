package usecase

import (
	"context"

	booking "github.com/AnujYadav540/SkillSwap/internal/pkg/booking/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/booking/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// ListBookingsUseCase returns every booking the user participates in, newest
// first.
type ListBookingsUseCase struct {
	Repo repository.BookingRepository
}

func NewListBookingsUseCase(repo repository.BookingRepository) *ListBookingsUseCase {
	return &ListBookingsUseCase{Repo: repo}
}

func (uc *ListBookingsUseCase) Execute(ctx context.Context, userID int64) ([]booking.View, error) {
	views, err := uc.Repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return views, nil
}
