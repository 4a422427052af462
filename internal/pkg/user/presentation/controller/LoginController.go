package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/pkg/user/application/usecase"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/user/persistence/repository/adapter"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// LoginController handles the login endpoint only.
type LoginController struct {
	UC *usecase.LoginUseCase
}

func NewLoginController(pool *pgxpool.Pool) *LoginController {
	return &LoginController{UC: usecase.NewLoginUseCase(adapter.NewPgUserRepository(pool))}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *LoginController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		res, err := h.UC.Execute(ctx, usecase.LoginInput{Identifier: req.Username, Password: req.Password})
		if err != nil {
			// Bad credentials read as 401 at this endpoint, not 403.
			if apperr.CodeOf(err) == apperr.CodeUnauthorized {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			renderError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   res.Token,
			"user":    userJSON(res.User),
		})
	}
}
