package repository

import (
	"context"

	user "github.com/AnujYadav540/SkillSwap/internal/pkg/user/domain"
)

// ErrDuplicate is returned by Create when the username or email is taken.
type ErrDuplicate struct{}

func (ErrDuplicate) Error() string { return "user: username or email already exists" }

// ErrNotFound is returned when no user matches the lookup.
type ErrNotFound struct{}

func (ErrNotFound) Error() string { return "user: not found" }

// UserRepository defines persistence operations for accounts and profiles.
type UserRepository interface {
	Create(ctx context.Context, u user.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
	// FindByIdentifier resolves a login identifier that may be either a
	// username or an email address.
	FindByIdentifier(ctx context.Context, usernameOrEmail string) (*user.User, error)
	UpdateProfile(ctx context.Context, id int64, p user.ProfileUpdate) (*user.User, error)
}
