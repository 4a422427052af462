package usecase

import (
	"context"
	"errors"
	"log"

	cacheport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/cache/port"
	matchdomain "github.com/AnujYadav540/SkillSwap/internal/pkg/match/domain"
	skill "github.com/AnujYadav540/SkillSwap/internal/pkg/skill/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/skill/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// AddSkillInput carries a new inventory entry.
type AddSkillInput struct {
	UserID      int64
	Name        string
	Direction   string
	Description string
}

// AddSkillUseCase inserts a skill and drops the owner's cached match results,
// since any inventory change can alter who qualifies.
type AddSkillUseCase struct {
	Repo  repository.SkillRepository
	Cache cacheport.Cache // optional
}

func NewAddSkillUseCase(repo repository.SkillRepository, cache cacheport.Cache) *AddSkillUseCase {
	return &AddSkillUseCase{Repo: repo, Cache: cache}
}

func (uc *AddSkillUseCase) Execute(ctx context.Context, in AddSkillInput) (*skill.Skill, error) {
	s, ok := skill.NewSkill(in.UserID, in.Name, in.Direction, in.Description)
	if !ok {
		return nil, apperr.InvalidRequest("valid skill name and direction (teach/learn) are required")
	}

	id, err := uc.Repo.Insert(ctx, *s)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate{}) {
			return nil, apperr.InvalidRequest("skill already exists for this direction")
		}
		return nil, apperr.StoreUnavailable(err)
	}
	s.ID = id

	invalidateMatches(ctx, uc.Cache, in.UserID)
	return s, nil
}

// invalidateMatches drops the cached match list for userID. Best-effort: a
// cache failure never fails the skill mutation.
func invalidateMatches(ctx context.Context, cache cacheport.Cache, userID int64) {
	if cache == nil {
		return
	}
	if _, err := cache.Del(ctx, matchdomain.CacheKey(userID)); err != nil {
		log.Printf("skill: match cache invalidation failed for user %d: %v", userID, err)
	}
}
