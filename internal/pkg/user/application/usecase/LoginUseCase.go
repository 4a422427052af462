package usecase

import (
	"context"
	"errors"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	user "github.com/AnujYadav540/SkillSwap/internal/pkg/user/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/user/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// LoginInput accepts a username or email plus the password.
type LoginInput struct {
	Identifier string
	Password   string
}

type LoginResult struct {
	User  *user.User
	Token string
}

// LoginUseCase verifies credentials and issues a session token. Unknown
// identifiers and wrong passwords are indistinguishable to the caller.
type LoginUseCase struct {
	Repo repository.UserRepository
}

func NewLoginUseCase(repo repository.UserRepository) *LoginUseCase {
	return &LoginUseCase{Repo: repo}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*LoginResult, error) {
	in.Identifier = user.NormalizeIdentifier(in.Identifier)
	if in.Identifier == "" || in.Password == "" {
		return nil, apperr.InvalidRequest("username and password are required")
	}

	u, err := uc.Repo.FindByIdentifier(ctx, in.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound{}) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		return nil, apperr.StoreUnavailable(err)
	}

	if !auth.CheckPassword(u.PasswordHash, in.Password) {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := auth.IssueToken(u.ID, u.Username)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeUnknown, "could not issue token", err)
	}
	return &LoginResult{User: u, Token: token}, nil
}
