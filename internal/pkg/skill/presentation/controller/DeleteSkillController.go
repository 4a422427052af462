package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	cacheport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/cache/port"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/skill/application/usecase"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/skill/persistence/repository/adapter"
)

// DeleteSkillController removes an owned skill.
type DeleteSkillController struct {
	UC *usecase.DeleteSkillUseCase
}

func NewDeleteSkillController(pool *pgxpool.Pool, cache cacheport.Cache) *DeleteSkillController {
	return &DeleteSkillController{UC: usecase.NewDeleteSkillUseCase(adapter.NewPgSkillRepository(pool), cache)}
}

func (h *DeleteSkillController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}

		skillID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || skillID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid skill id is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, skillID, userID); err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
	}
}
