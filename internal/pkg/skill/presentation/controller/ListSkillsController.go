package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/skill/application/usecase"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/skill/persistence/repository/adapter"
)

// ListSkillsController returns the caller's skill inventory.
type ListSkillsController struct {
	UC *usecase.ListSkillsUseCase
}

func NewListSkillsController(pool *pgxpool.Pool) *ListSkillsController {
	return &ListSkillsController{UC: usecase.NewListSkillsUseCase(adapter.NewPgSkillRepository(pool))}
}

func (h *ListSkillsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		skills, err := h.UC.Execute(ctx, userID)
		if err != nil {
			renderError(c, err)
			return
		}

		out := make([]gin.H, 0, len(skills))
		for i := range skills {
			out = append(out, skillJSON(&skills[i]))
		}
		c.JSON(http.StatusOK, gin.H{"skills": out})
	}
}
