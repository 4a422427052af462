package repository

import (
	"context"

	skill "github.com/AnujYadav540/SkillSwap/internal/pkg/skill/domain"
)

// ErrDuplicate signals the (user, name, direction) uniqueness violation.
type ErrDuplicate struct{}

func (ErrDuplicate) Error() string { return "skill: already listed in this direction" }

// ErrNotFound covers both a missing skill id and an owner mismatch, so a
// caller cannot probe other users' skill ids.
type ErrNotFound struct{}

func (ErrNotFound) Error() string { return "skill: not found" }

// SkillRepository defines persistence operations for the skill inventory.
// Update and Delete are owner-checked at the store.
type SkillRepository interface {
	Insert(ctx context.Context, s skill.Skill) (int64, error)
	List(ctx context.Context, userID int64) ([]skill.Skill, error)
	Update(ctx context.Context, id int64, ownerID int64, description string) (*skill.Skill, error)
	Delete(ctx context.Context, id int64, ownerID int64) error
}
