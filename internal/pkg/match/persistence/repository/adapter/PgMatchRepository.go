package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	match "github.com/AnujYadav540/SkillSwap/internal/pkg/match/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/match/persistence/repository/port"
)

type PgMatchRepository struct {
	pool *pgxpool.Pool
}

func NewPgMatchRepository(pool *pgxpool.Pool) *PgMatchRepository {
	return &PgMatchRepository{pool: pool}
}

var _ repository.MatchRepository = (*PgMatchRepository)(nil)

// A candidate qualifies when they teach something the requester wants to
// learn OR want to learn something the requester teaches; one direction is
// enough. The representative skill per direction is the lexicographically
// first qualifying name so repeated queries report the same pair.
const reciprocalQuery = `
SELECT u.id, u.username, u.bio, u.rating, u.latitude, u.longitude, u.city, u.country,
	COALESCE((
		SELECT s.skill_name FROM skills s
		WHERE s.user_id = u.id AND s.direction = 'teach'
		  AND s.skill_name IN (SELECT skill_name FROM skills WHERE user_id = $1 AND direction = 'learn')
		ORDER BY s.skill_name
		LIMIT 1
	), '') AS teaches,
	COALESCE((
		SELECT s.skill_name FROM skills s
		WHERE s.user_id = u.id AND s.direction = 'learn'
		  AND s.skill_name IN (SELECT skill_name FROM skills WHERE user_id = $1 AND direction = 'teach')
		ORDER BY s.skill_name
		LIMIT 1
	), '') AS learns
FROM users u
WHERE u.id <> $1
  AND (
	EXISTS (
		SELECT 1 FROM skills s
		WHERE s.user_id = u.id AND s.direction = 'teach'
		  AND s.skill_name IN (SELECT skill_name FROM skills WHERE user_id = $1 AND direction = 'learn')
	)
	OR EXISTS (
		SELECT 1 FROM skills s
		WHERE s.user_id = u.id AND s.direction = 'learn'
		  AND s.skill_name IN (SELECT skill_name FROM skills WHERE user_id = $1 AND direction = 'teach')
	)
  )
ORDER BY u.rating DESC, u.username ASC
`

func (r *PgMatchRepository) FindReciprocalCandidates(ctx context.Context, userID int64) ([]repository.CandidateRow, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMatchRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, reciprocalQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.CandidateRow
	for rows.Next() {
		var c repository.CandidateRow
		if err := rows.Scan(&c.UserID, &c.Username, &c.Bio, &c.Rating,
			&c.Latitude, &c.Longitude, &c.City, &c.Country, &c.Teaches, &c.Learns); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PgMatchRepository) FindCoordinates(ctx context.Context, userID int64) (*match.Coordinates, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMatchRepository: nil pool")
	}
	var lat, lon *float64
	err := r.pool.QueryRow(ctx, "SELECT latitude, longitude FROM users WHERE id = $1", userID).Scan(&lat, &lon)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if lat == nil || lon == nil {
		return nil, nil
	}
	return &match.Coordinates{Lat: *lat, Lon: *lon}, nil
}
