package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/booking/application/usecase"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/booking/persistence/repository/adapter"
)

// TransitionBookingController moves a booking through its state machine.
type TransitionBookingController struct {
	UC *usecase.TransitionBookingUseCase
}

func NewTransitionBookingController(pool *pgxpool.Pool) *TransitionBookingController {
	return &TransitionBookingController{UC: usecase.NewTransitionBookingUseCase(adapter.NewPgBookingRepository(pool))}
}

type transitionBookingRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *TransitionBookingController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}

		bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || bookingID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid booking id is required"})
			return
		}

		var req transitionBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		b, err := h.UC.Execute(ctx, usecase.TransitionBookingInput{
			BookingID:   bookingID,
			ActorID:     userID,
			TargetState: req.Status,
		})
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Booking status updated successfully",
			"booking": bookingJSON(b),
		})
	}
}
