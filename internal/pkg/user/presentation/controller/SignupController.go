package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/pkg/user/application/usecase"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/user/persistence/repository/adapter"
)

// SignupController handles the registration endpoint only (one controller per endpoint)
type SignupController struct {
	UC *usecase.SignupUseCase
}

func NewSignupController(pool *pgxpool.Pool) *SignupController {
	return &SignupController{UC: usecase.NewSignupUseCase(adapter.NewPgUserRepository(pool))}
}

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Bio      string `json:"bio"`
}

func (h *SignupController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username, email, and password are required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		res, err := h.UC.Execute(ctx, usecase.SignupInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			Bio:      req.Bio,
		})
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User created successfully",
			"token":   res.Token,
			"user":    userJSON(res.User),
		})
	}
}
