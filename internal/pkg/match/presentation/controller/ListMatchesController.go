package controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	cacheport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/cache/port"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/match/application/usecase"
	match "github.com/AnujYadav540/SkillSwap/internal/pkg/match/domain"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/match/persistence/repository/adapter"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// ListMatchesController serves the match listing. A store failure on this
// read path degrades to an empty list rather than an error response.
type ListMatchesController struct {
	UC *usecase.FindMatchesUseCase
}

func NewListMatchesController(pool *pgxpool.Pool, cache cacheport.Cache, thresholdKm float64, cacheTTL time.Duration) *ListMatchesController {
	uc := usecase.NewFindMatchesUseCase(adapter.NewPgMatchRepository(pool), cache, thresholdKm, cacheTTL)
	return &ListMatchesController{UC: uc}
}

func (h *ListMatchesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		candidates, err := h.UC.Execute(ctx, userID)
		if err != nil {
			if apperr.CodeOf(err) == apperr.CodeStoreUnavailable {
				log.Printf("match: listing degraded to empty for user %d: %v", userID, err)
				c.JSON(http.StatusOK, gin.H{"matches": []match.Candidate{}})
				return
			}
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.SafeMessage(err), "code": apperr.CodeOf(err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{"matches": candidates})
	}
}
