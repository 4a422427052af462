package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/user/application/usecase"
	user "github.com/AnujYadav540/SkillSwap/internal/pkg/user/domain"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/user/persistence/repository/adapter"
)

// UpdateProfileController applies a partial profile update.
type UpdateProfileController struct {
	UC *usecase.UpdateProfileUseCase
}

func NewUpdateProfileController(pool *pgxpool.Pool) *UpdateProfileController {
	return &UpdateProfileController{UC: usecase.NewUpdateProfileUseCase(adapter.NewPgUserRepository(pool))}
}

type updateProfileRequest struct {
	Bio       *string  `json:"bio"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	City      *string  `json:"city"`
	Country   *string  `json:"country"`
}

func (h *UpdateProfileController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}

		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		u, err := h.UC.Execute(ctx, userID, user.ProfileUpdate{
			Bio:       req.Bio,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			City:      req.City,
			Country:   req.Country,
		})
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Profile updated successfully",
			"user":    userJSON(u),
		})
	}
}
