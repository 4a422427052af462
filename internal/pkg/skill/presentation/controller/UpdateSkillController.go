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

// UpdateSkillController changes an owned skill's description.
type UpdateSkillController struct {
	UC *usecase.UpdateSkillUseCase
}

func NewUpdateSkillController(pool *pgxpool.Pool, cache cacheport.Cache) *UpdateSkillController {
	return &UpdateSkillController{UC: usecase.NewUpdateSkillUseCase(adapter.NewPgSkillRepository(pool), cache)}
}

type updateSkillRequest struct {
	Description string `json:"description"`
}

func (h *UpdateSkillController) Handle() gin.HandlerFunc {
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

		var req updateSkillRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		s, err := h.UC.Execute(ctx, usecase.UpdateSkillInput{
			SkillID:     skillID,
			OwnerID:     userID,
			Description: req.Description,
		})
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Skill updated successfully",
			"skill":   skillJSON(s),
		})
	}
}
