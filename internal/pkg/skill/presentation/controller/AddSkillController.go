package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	cacheport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/cache/port"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/skill/application/usecase"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/skill/persistence/repository/adapter"
)

// AddSkillController handles skill creation only (one controller per endpoint)
type AddSkillController struct {
	UC *usecase.AddSkillUseCase
}

func NewAddSkillController(pool *pgxpool.Pool, cache cacheport.Cache) *AddSkillController {
	return &AddSkillController{UC: usecase.NewAddSkillUseCase(adapter.NewPgSkillRepository(pool), cache)}
}

type addSkillRequest struct {
	SkillName   string `json:"skill_name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

func (h *AddSkillController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}

		var req addSkillRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid skill name and type (teach/learn) are required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		s, err := h.UC.Execute(ctx, usecase.AddSkillInput{
			UserID:      userID,
			Name:        req.SkillName,
			Direction:   req.Type,
			Description: req.Description,
		})
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Skill added successfully",
			"skill":   skillJSON(s),
		})
	}
}
