package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	cacheport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/cache/port"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/skill/presentation/controller"
)

// RegisterRoutes registers skill inventory endpoints. All of them require an
// authenticated identity.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, cache cacheport.Cache) {
	addCtl := controller.NewAddSkillController(pool, cache)
	listCtl := controller.NewListSkillsController(pool)
	updateCtl := controller.NewUpdateSkillController(pool, cache)
	deleteCtl := controller.NewDeleteSkillController(pool, cache)

	authed := g.Group("", auth.Middleware())
	authed.POST("/skills", addCtl.Handle())
	authed.GET("/skills", listCtl.Handle())
	authed.PUT("/skills/:id", updateCtl.Handle())
	authed.DELETE("/skills/:id", deleteCtl.Handle())
}
