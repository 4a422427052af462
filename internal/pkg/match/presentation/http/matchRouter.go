package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	cacheport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/cache/port"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/match/presentation/controller"
)

// RegisterRoutes registers the match discovery endpoint.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, cache cacheport.Cache, thresholdKm float64, cacheTTL time.Duration) {
	listCtl := controller.NewListMatchesController(pool, cache, thresholdKm, cacheTTL)

	authed := g.Group("", auth.Middleware())
	authed.GET("/matches", listCtl.Handle())
}
