package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/booking/application/usecase"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/booking/persistence/repository/adapter"
)

// ListBookingsController returns the caller's bookings, newest first.
type ListBookingsController struct {
	UC *usecase.ListBookingsUseCase
}

func NewListBookingsController(pool *pgxpool.Pool) *ListBookingsController {
	return &ListBookingsController{UC: usecase.NewListBookingsUseCase(adapter.NewPgBookingRepository(pool))}
}

func (h *ListBookingsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		views, err := h.UC.Execute(ctx, userID)
		if err != nil {
			renderError(c, err)
			return
		}

		out := make([]gin.H, 0, len(views))
		for i := range views {
			out = append(out, viewJSON(&views[i]))
		}
		c.JSON(http.StatusOK, gin.H{"bookings": out})
	}
}
