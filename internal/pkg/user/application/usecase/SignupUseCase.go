package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	user "github.com/AnujYadav540/SkillSwap/internal/pkg/user/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/user/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// SignupInput carries the registration form fields.
type SignupInput struct {
	Username string
	Email    string
	Password string
	Bio      string
}

// SignupResult is the created account plus its session token.
type SignupResult struct {
	User  *user.User
	Token string
}

// SignupUseCase registers a new account and issues its first token.
type SignupUseCase struct {
	Repo repository.UserRepository
}

func NewSignupUseCase(repo repository.UserRepository) *SignupUseCase {
	return &SignupUseCase{Repo: repo}
}

func (uc *SignupUseCase) Execute(ctx context.Context, in SignupInput) (*SignupResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, apperr.InvalidRequest("username, email, and password are required")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeUnknown, "could not process password", err)
	}

	id, err := uc.Repo.Create(ctx, user.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Bio:          in.Bio,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate{}) {
			return nil, apperr.InvalidRequest("username or email already exists")
		}
		return nil, apperr.StoreUnavailable(err)
	}

	token, err := auth.IssueToken(id, in.Username)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeUnknown, "could not issue token", err)
	}

	created, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return &SignupResult{User: created, Token: token}, nil
}
