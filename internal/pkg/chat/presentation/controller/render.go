package controller

import (
	"github.com/gin-gonic/gin"

	chat "github.com/AnujYadav540/SkillSwap/internal/pkg/chat/domain"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

func messageJSON(m *chat.Message) gin.H {
	out := gin.H{
		"id":          m.ID,
		"sender_id":   m.SenderID,
		"receiver_id": m.ReceiverID,
		"message":     m.Content,
		"timestamp":   m.Timestamp,
	}
	if m.SenderUsername != "" {
		out["sender_username"] = m.SenderUsername
	}
	if m.ReceiverUsername != "" {
		out["receiver_username"] = m.ReceiverUsername
	}
	return out
}

func renderError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{
		"error": apperr.SafeMessage(err),
		"code":  apperr.CodeOf(err),
	})
}
