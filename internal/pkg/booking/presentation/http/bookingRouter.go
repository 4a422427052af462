package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/booking/presentation/controller"
)

// RegisterRoutes registers session booking endpoints.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool) {
	createCtl := controller.NewCreateBookingController(pool)
	transitionCtl := controller.NewTransitionBookingController(pool)
	listCtl := controller.NewListBookingsController(pool)

	authed := g.Group("", auth.Middleware())
	authed.POST("/bookings", createCtl.Handle())
	authed.PUT("/bookings/:id", transitionCtl.Handle())
	authed.GET("/bookings", listCtl.Handle())
}
