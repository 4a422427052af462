package usecase

import (
	"context"
	"errors"

	cacheport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/cache/port"
	skill "github.com/AnujYadav540/SkillSwap/internal/pkg/skill/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/skill/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// UpdateSkillInput changes the free-text description of an owned skill. Name
// and direction are identity, not mutable state; relisting means delete+add.
type UpdateSkillInput struct {
	SkillID     int64
	OwnerID     int64
	Description string
}

type UpdateSkillUseCase struct {
	Repo  repository.SkillRepository
	Cache cacheport.Cache // optional
}

func NewUpdateSkillUseCase(repo repository.SkillRepository, cache cacheport.Cache) *UpdateSkillUseCase {
	return &UpdateSkillUseCase{Repo: repo, Cache: cache}
}

func (uc *UpdateSkillUseCase) Execute(ctx context.Context, in UpdateSkillInput) (*skill.Skill, error) {
	if in.SkillID == 0 {
		return nil, apperr.InvalidRequest("skill id is required")
	}
	s, err := uc.Repo.Update(ctx, in.SkillID, in.OwnerID, in.Description)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound{}) {
			return nil, apperr.NotFound("skill not found")
		}
		return nil, apperr.StoreUnavailable(err)
	}

	invalidateMatches(ctx, uc.Cache, in.OwnerID)
	return s, nil
}
