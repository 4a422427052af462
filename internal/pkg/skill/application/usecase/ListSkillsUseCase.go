package usecase

import (
	"context"

	skill "github.com/AnujYadav540/SkillSwap/internal/pkg/skill/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/skill/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// ListSkillsUseCase returns the user's inventory ordered by direction then name.
type ListSkillsUseCase struct {
	Repo repository.SkillRepository
}

func NewListSkillsUseCase(repo repository.SkillRepository) *ListSkillsUseCase {
	return &ListSkillsUseCase{Repo: repo}
}

func (uc *ListSkillsUseCase) Execute(ctx context.Context, userID int64) ([]skill.Skill, error) {
	skills, err := uc.Repo.List(ctx, userID)
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return skills, nil
}
