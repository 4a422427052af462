package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	user "github.com/AnujYadav540/SkillSwap/internal/pkg/user/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/user/persistence/repository/port"
)

const userColumns = "id, username, email, password, bio, rating, latitude, longitude, city, country, created_at"

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

var _ repository.UserRepository = (*PgUserRepository)(nil)

func (r *PgUserRepository) Create(ctx context.Context, u user.User) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgUserRepository: nil pool")
	}
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password, bio)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, u.Username, u.Email, u.PasswordHash, u.Bio).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, repository.ErrDuplicate{}
		}
		return 0, err
	}
	return id, nil
}

func (r *PgUserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (r *PgUserRepository) FindByIdentifier(ctx context.Context, usernameOrEmail string) (*user.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1 OR email = $1", usernameOrEmail)
	return scanUser(row)
}

func (r *PgUserRepository) UpdateProfile(ctx context.Context, id int64, p user.ProfileUpdate) (*user.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET
			bio       = COALESCE($2, bio),
			latitude  = COALESCE($3, latitude),
			longitude = COALESCE($4, longitude),
			city      = COALESCE($5, city),
			country   = COALESCE($6, country)
		WHERE id = $1
		RETURNING `+userColumns,
		id, p.Bio, p.Latitude, p.Longitude, p.City, p.Country)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Bio, &u.Rating,
		&u.Latitude, &u.Longitude, &u.City, &u.Country, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound{}
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
