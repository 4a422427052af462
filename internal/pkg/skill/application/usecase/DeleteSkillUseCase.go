package usecase

import (
	"context"
	"errors"

	cacheport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/cache/port"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/skill/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

type DeleteSkillUseCase struct {
	Repo  repository.SkillRepository
	Cache cacheport.Cache // optional
}

func NewDeleteSkillUseCase(repo repository.SkillRepository, cache cacheport.Cache) *DeleteSkillUseCase {
	return &DeleteSkillUseCase{Repo: repo, Cache: cache}
}

func (uc *DeleteSkillUseCase) Execute(ctx context.Context, skillID, ownerID int64) error {
	if skillID == 0 {
		return apperr.InvalidRequest("skill id is required")
	}
	if err := uc.Repo.Delete(ctx, skillID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound{}) {
			return apperr.NotFound("skill not found")
		}
		return apperr.StoreUnavailable(err)
	}

	invalidateMatches(ctx, uc.Cache, ownerID)
	return nil
}
