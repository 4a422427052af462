package controller

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/chat/application/usecase"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/chat/persistence/repository/adapter"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// GetConversationController returns the message history with another user.
// A store failure on this read path degrades to an empty list.
type GetConversationController struct {
	UC *usecase.GetConversationUseCase
}

func NewGetConversationController(pool *pgxpool.Pool) *GetConversationController {
	return &GetConversationController{UC: usecase.NewGetConversationUseCase(adapter.NewPgMessageRepository(pool))}
}

func (h *GetConversationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}

		otherID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
		if err != nil || otherID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid user id is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msgs, err := h.UC.Execute(ctx, usecase.GetConversationInput{UserID: userID, OtherUserID: otherID})
		if err != nil {
			if apperr.CodeOf(err) == apperr.CodeStoreUnavailable {
				log.Printf("chat: history degraded to empty for users %d/%d: %v", userID, otherID, err)
				c.JSON(http.StatusOK, gin.H{"messages": []gin.H{}})
				return
			}
			renderError(c, err)
			return
		}

		out := make([]gin.H, 0, len(msgs))
		for i := range msgs {
			out = append(out, messageJSON(&msgs[i]))
		}
		c.JSON(http.StatusOK, gin.H{"messages": out})
	}
}
