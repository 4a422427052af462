package repository

import (
	"context"

	match "github.com/AnujYadav540/SkillSwap/internal/pkg/match/domain"
)

// CandidateRow is one reciprocal-interest row as the store reports it, before
// distance annotation. Teaches/Learns carry the lexicographically first
// qualifying skill name per direction, or "" when that direction has none.
type CandidateRow struct {
	UserID    int64
	Username  string
	Bio       string
	Rating    float64
	Latitude  *float64
	Longitude *float64
	City      *string
	Country   *string
	Teaches   string
	Learns    string
}

// MatchRepository is the read-only query contract of the match engine.
type MatchRepository interface {
	// FindReciprocalCandidates returns every user other than userID with at
	// least one direction of teach/learn overlap, ordered by rating
	// descending then username ascending.
	FindReciprocalCandidates(ctx context.Context, userID int64) ([]CandidateRow, error)
	// FindCoordinates resolves userID's location, or nil when either
	// coordinate is unset.
	FindCoordinates(ctx context.Context, userID int64) (*match.Coordinates, error)
}
