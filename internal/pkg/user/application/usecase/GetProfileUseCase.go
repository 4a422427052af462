package usecase

import (
	"context"
	"errors"

	user "github.com/AnujYadav540/SkillSwap/internal/pkg/user/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/user/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// GetProfileUseCase fetches the authenticated user's own profile.
type GetProfileUseCase struct {
	Repo repository.UserRepository
}

func NewGetProfileUseCase(repo repository.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{Repo: repo}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID int64) (*user.User, error) {
	u, err := uc.Repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound{}) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.StoreUnavailable(err)
	}
	return u, nil
}
