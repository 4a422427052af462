package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/user/application/usecase"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/user/persistence/repository/adapter"
)

// GetProfileController returns the authenticated user's own profile.
type GetProfileController struct {
	UC *usecase.GetProfileUseCase
}

func NewGetProfileController(pool *pgxpool.Pool) *GetProfileController {
	return &GetProfileController{UC: usecase.NewGetProfileUseCase(adapter.NewPgUserRepository(pool))}
}

func (h *GetProfileController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		u, err := h.UC.Execute(ctx, userID)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": userJSON(u)})
	}
}
