package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	cacheport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/cache/port"
	match "github.com/AnujYadav540/SkillSwap/internal/pkg/match/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/match/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

const (
	// DefaultOnlineThresholdKm is the distance above which a session is
	// suggested as online rather than in-person.
	DefaultOnlineThresholdKm = 50.0

	defaultCacheTTL = time.Minute
)

// FindMatchesUseCase computes reciprocal-interest candidates for a user,
// annotated with distance and a suggested session modality. Read-only against
// the store; results are cached briefly in Redis and invalidated by skill
// mutations.
type FindMatchesUseCase struct {
	Repo        repository.MatchRepository
	Cache       cacheport.Cache // optional
	ThresholdKm float64
	CacheTTL    time.Duration
}

func NewFindMatchesUseCase(repo repository.MatchRepository, cache cacheport.Cache, thresholdKm float64, cacheTTL time.Duration) *FindMatchesUseCase {
	if thresholdKm <= 0 {
		thresholdKm = DefaultOnlineThresholdKm
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &FindMatchesUseCase{Repo: repo, Cache: cache, ThresholdKm: thresholdKm, CacheTTL: cacheTTL}
}

func (uc *FindMatchesUseCase) Execute(ctx context.Context, userID int64) ([]match.Candidate, error) {
	if userID == 0 {
		return nil, apperr.InvalidRequest("user id is required")
	}

	key := match.CacheKey(userID)
	if uc.Cache != nil {
		if raw, err := uc.Cache.Get(ctx, key); err == nil {
			var cached []match.Candidate
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		} else if !errors.Is(err, cacheport.ErrMiss) {
			log.Printf("match: cache read failed for user %d: %v", userID, err)
		}
	}

	requesterLoc, err := uc.Repo.FindCoordinates(ctx, userID)
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}

	rows, err := uc.Repo.FindReciprocalCandidates(ctx, userID)
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}

	candidates := make([]match.Candidate, 0, len(rows))
	for _, row := range rows {
		var loc *match.Coordinates
		if row.Latitude != nil && row.Longitude != nil {
			loc = &match.Coordinates{Lat: *row.Latitude, Lon: *row.Longitude}
		}
		mode, dist := match.SuggestMode(requesterLoc, loc, uc.ThresholdKm)
		candidates = append(candidates, match.Candidate{
			UserID:        row.UserID,
			Username:      row.Username,
			Bio:           row.Bio,
			Rating:        row.Rating,
			Teaches:       row.Teaches,
			Learns:        row.Learns,
			City:          row.City,
			Country:       row.Country,
			DistanceKm:    dist,
			SuggestedMode: mode,
		})
	}

	if uc.Cache != nil {
		if raw, err := json.Marshal(candidates); err == nil {
			if err := uc.Cache.Set(ctx, key, string(raw), uc.CacheTTL); err != nil {
				log.Printf("match: cache write failed for user %d: %v", userID, err)
			}
		}
	}
	return candidates, nil
}
