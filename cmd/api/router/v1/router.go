package v1

import (
	"time"

	cacheport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/cache/port"
	qport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/queue/port"
	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/realtime"
	bookinghttp "github.com/AnujYadav540/SkillSwap/internal/pkg/booking/presentation/http"
	chathttp "github.com/AnujYadav540/SkillSwap/internal/pkg/chat/presentation/http"
	matchhttp "github.com/AnujYadav540/SkillSwap/internal/pkg/match/presentation/http"
	skillhttp "github.com/AnujYadav540/SkillSwap/internal/pkg/skill/presentation/http"
	userhttp "github.com/AnujYadav540/SkillSwap/internal/pkg/user/presentation/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes mounts all version 1 API routes under /api/v1
func RegisterRoutes(r *gin.Engine, pool *pgxpool.Pool, cache cacheport.Cache, client qport.Client, registry *realtime.Registry, matchThresholdKm float64, matchCacheTTL time.Duration) {
	v1 := r.Group("/api/v1")

	// Pass the shared infrastructure down to each HTTP layer
	userhttp.RegisterRoutes(v1, pool)
	skillhttp.RegisterRoutes(v1, pool, cache)
	matchhttp.RegisterRoutes(v1, pool, cache, matchThresholdKm, matchCacheTTL)
	bookinghttp.RegisterRoutes(v1, pool)
	chathttp.RegisterRoutes(v1, pool, client, registry)
}
