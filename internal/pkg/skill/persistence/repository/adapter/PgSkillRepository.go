package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	skill "github.com/AnujYadav540/SkillSwap/internal/pkg/skill/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/skill/persistence/repository/port"
)

type PgSkillRepository struct {
	pool *pgxpool.Pool
}

func NewPgSkillRepository(pool *pgxpool.Pool) *PgSkillRepository {
	return &PgSkillRepository{pool: pool}
}

var _ repository.SkillRepository = (*PgSkillRepository)(nil)

func (r *PgSkillRepository) Insert(ctx context.Context, s skill.Skill) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgSkillRepository: nil pool")
	}
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO skills (user_id, skill_name, direction, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, s.UserID, s.Name, s.Direction, s.Description).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, repository.ErrDuplicate{}
		}
		return 0, err
	}
	return id, nil
}

func (r *PgSkillRepository) List(ctx context.Context, userID int64) ([]skill.Skill, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgSkillRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, skill_name, direction, description, created_at
		FROM skills
		WHERE user_id = $1
		ORDER BY direction, skill_name
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []skill.Skill
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Direction, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *PgSkillRepository) Update(ctx context.Context, id int64, ownerID int64, description string) (*skill.Skill, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgSkillRepository: nil pool")
	}
	var s skill.Skill
	err := r.pool.QueryRow(ctx, `
		UPDATE skills SET description = $3
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, skill_name, direction, description, created_at
	`, id, ownerID, description).Scan(&s.ID, &s.UserID, &s.Name, &s.Direction, &s.Description, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound{}
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgSkillRepository) Delete(ctx context.Context, id int64, ownerID int64) error {
	if r == nil || r.pool == nil {
		return errors.New("PgSkillRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, "DELETE FROM skills WHERE id = $1 AND user_id = $2", id, ownerID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound{}
	}
	return nil
}
