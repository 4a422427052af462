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

// CreateBookingController handles session request creation.
type CreateBookingController struct {
	UC *usecase.CreateBookingUseCase
}

func NewCreateBookingController(pool *pgxpool.Pool) *CreateBookingController {
	return &CreateBookingController{UC: usecase.NewCreateBookingUseCase(adapter.NewPgBookingRepository(pool))}
}

type createBookingRequest struct {
	ReceiverID  int64      `json:"receiver_id" binding:"required"`
	Skill       string     `json:"skill" binding:"required"`
	SessionDate *time.Time `json:"session_date"`
	Notes       string     `json:"notes"`
}

func (h *CreateBookingController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}

		var req createBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "receiver id and skill are required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		b, err := h.UC.Execute(ctx, usecase.CreateBookingInput{
			SenderID:    userID,
			ReceiverID:  req.ReceiverID,
			Skill:       req.Skill,
			SessionDate: req.SessionDate,
			Notes:       req.Notes,
		})
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Booking request sent successfully",
			"booking": bookingJSON(b),
		})
	}
}
