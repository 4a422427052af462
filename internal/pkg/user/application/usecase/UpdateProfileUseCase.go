package usecase

import (
	"context"
	"errors"

	user "github.com/AnujYadav540/SkillSwap/internal/pkg/user/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/user/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// UpdateProfileUseCase applies a partial profile update. Each field is
// independently settable; omitted fields keep their current value.
type UpdateProfileUseCase struct {
	Repo repository.UserRepository
}

func NewUpdateProfileUseCase(repo repository.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{Repo: repo}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, userID int64, p user.ProfileUpdate) (*user.User, error) {
	if p.Empty() {
		return nil, apperr.InvalidRequest("nothing to update")
	}
	if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
		return nil, apperr.InvalidRequest("latitude must be between -90 and 90")
	}
	if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
		return nil, apperr.InvalidRequest("longitude must be between -180 and 180")
	}

	u, err := uc.Repo.UpdateProfile(ctx, userID, p)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound{}) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.StoreUnavailable(err)
	}
	return u, nil
}
