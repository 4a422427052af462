package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/user/presentation/controller"
)

// RegisterRoutes registers account and profile endpoints under the given group.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool) {
	signupCtl := controller.NewSignupController(pool)
	loginCtl := controller.NewLoginController(pool)
	getProfileCtl := controller.NewGetProfileController(pool)
	updateProfileCtl := controller.NewUpdateProfileController(pool)

	g.POST("/signup", signupCtl.Handle())
	g.POST("/login", loginCtl.Handle())

	authed := g.Group("", auth.Middleware())
	authed.GET("/profile", getProfileCtl.Handle())
	authed.PUT("/profile", updateProfileCtl.Handle())
}
