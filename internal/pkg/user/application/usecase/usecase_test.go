package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	user "github.com/AnujYadav540/SkillSwap/internal/pkg/user/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/user/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	createErr    error
	createdID    int64
	created      *user.User
	byID         map[int64]*user.User
	byIdentifier map[string]*user.User
	findErr      error
	updated      *user.User
	updateErr    error
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	u.ID = f.createdID
	f.created = &u
	if f.byID == nil {
		f.byID = map[int64]*user.User{}
	}
	f.byID[u.ID] = &u
	return f.createdID, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound{}
	}
	return u, nil
}

func (f *fakeUserRepo) FindByIdentifier(_ context.Context, identifier string) (*user.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.byIdentifier[identifier]
	if !ok {
		return nil, repository.ErrNotFound{}
	}
	return u, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, _ int64, _ user.ProfileUpdate) (*user.User, error) {
	return f.updated, f.updateErr
}

func TestSignup(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("creates account and issues token", func(t *testing.T) {
		repo := &fakeUserRepo{createdID: 9}
		uc := NewSignupUseCase(repo)

		res, err := uc.Execute(ctx, SignupInput{Username: " asha ", Email: "asha@example.com", Password: "s3cret", Bio: "guitarist"})
		require.NoError(t, err)
		assert.Equal(t, int64(9), res.User.ID)
		assert.NotEmpty(t, res.Token)

		assert.Equal(t, "asha", repo.created.Username)
		assert.NotEqual(t, "s3cret", repo.created.PasswordHash)
		assert.True(t, auth.CheckPassword(repo.created.PasswordHash, "s3cret"))

		claims, err := auth.VerifyToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(9), claims.UserID)
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := NewSignupUseCase(&fakeUserRepo{})
		_, err := uc.Execute(ctx, SignupInput{Username: "asha", Email: "  ", Password: "s3cret"})
		assert.Equal(t, apperr.CodeInvalidRequest, apperr.CodeOf(err))
	})

	t.Run("duplicate username or email", func(t *testing.T) {
		uc := NewSignupUseCase(&fakeUserRepo{createErr: repository.ErrDuplicate{}})
		_, err := uc.Execute(ctx, SignupInput{Username: "asha", Email: "asha@example.com", Password: "s3cret"})
		assert.Equal(t, apperr.CodeInvalidRequest, apperr.CodeOf(err))
	})

	t.Run("store failure", func(t *testing.T) {
		uc := NewSignupUseCase(&fakeUserRepo{createErr: errors.New("down")})
		_, err := uc.Execute(ctx, SignupInput{Username: "asha", Email: "asha@example.com", Password: "s3cret"})
		assert.Equal(t, apperr.CodeStoreUnavailable, apperr.CodeOf(err))
	})
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	asha := &user.User{ID: 9, Username: "asha", Email: "asha@example.com", PasswordHash: hash}

	t.Run("by username", func(t *testing.T) {
		repo := &fakeUserRepo{byIdentifier: map[string]*user.User{"asha": asha}}
		uc := NewLoginUseCase(repo)

		res, err := uc.Execute(ctx, LoginInput{Identifier: "asha", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, asha, res.User)
		assert.NotEmpty(t, res.Token)
	})

	t.Run("by email", func(t *testing.T) {
		repo := &fakeUserRepo{byIdentifier: map[string]*user.User{"asha@example.com": asha}}
		uc := NewLoginUseCase(repo)

		_, err := uc.Execute(ctx, LoginInput{Identifier: " asha@example.com ", Password: "s3cret"})
		assert.NoError(t, err)
	})

	t.Run("unknown identifier and wrong password look the same", func(t *testing.T) {
		repo := &fakeUserRepo{byIdentifier: map[string]*user.User{"asha": asha}}
		uc := NewLoginUseCase(repo)

		_, errUnknown := uc.Execute(ctx, LoginInput{Identifier: "nobody", Password: "s3cret"})
		_, errWrong := uc.Execute(ctx, LoginInput{Identifier: "asha", Password: "wrong"})

		assert.Equal(t, apperr.CodeUnauthorized, apperr.CodeOf(errUnknown))
		assert.Equal(t, apperr.CodeUnauthorized, apperr.CodeOf(errWrong))
		assert.Equal(t, apperr.SafeMessage(errUnknown), apperr.SafeMessage(errWrong))
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := NewLoginUseCase(&fakeUserRepo{})
		_, err := uc.Execute(ctx, LoginInput{Identifier: "asha"})
		assert.Equal(t, apperr.CodeInvalidRequest, apperr.CodeOf(err))
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		asha := &user.User{ID: 9, Username: "asha"}
		uc := NewGetProfileUseCase(&fakeUserRepo{byID: map[int64]*user.User{9: asha}})

		got, err := uc.Execute(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, asha, got)
	})

	t.Run("missing", func(t *testing.T) {
		uc := NewGetProfileUseCase(&fakeUserRepo{})
		_, err := uc.Execute(ctx, 404)
		assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }
	f64Ptr := func(f float64) *float64 { return &f }

	t.Run("partial update", func(t *testing.T) {
		updated := &user.User{ID: 9, Username: "asha", Bio: "now teaching"}
		uc := NewUpdateProfileUseCase(&fakeUserRepo{updated: updated})

		got, err := uc.Execute(ctx, 9, user.ProfileUpdate{Bio: strPtr("now teaching")})
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("empty update", func(t *testing.T) {
		uc := NewUpdateProfileUseCase(&fakeUserRepo{})
		_, err := uc.Execute(ctx, 9, user.ProfileUpdate{})
		assert.Equal(t, apperr.CodeInvalidRequest, apperr.CodeOf(err))
	})

	t.Run("latitude out of range", func(t *testing.T) {
		uc := NewUpdateProfileUseCase(&fakeUserRepo{})
		_, err := uc.Execute(ctx, 9, user.ProfileUpdate{Latitude: f64Ptr(91)})
		assert.Equal(t, apperr.CodeInvalidRequest, apperr.CodeOf(err))
	})

	t.Run("longitude out of range", func(t *testing.T) {
		uc := NewUpdateProfileUseCase(&fakeUserRepo{})
		_, err := uc.Execute(ctx, 9, user.ProfileUpdate{Longitude: f64Ptr(-181)})
		assert.Equal(t, apperr.CodeInvalidRequest, apperr.CodeOf(err))
	})
}
