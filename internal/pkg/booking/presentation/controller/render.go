package controller

import (
	"github.com/gin-gonic/gin"

	booking "github.com/AnujYadav540/SkillSwap/internal/pkg/booking/domain"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

func bookingJSON(b *booking.Booking) gin.H {
	return gin.H{
		"id":           b.ID,
		"sender_id":    b.SenderID,
		"receiver_id":  b.ReceiverID,
		"skill":        b.Skill,
		"session_date": b.SessionDate,
		"notes":        b.Notes,
		"status":       b.Status,
	}
}

func viewJSON(v *booking.View) gin.H {
	out := bookingJSON(&v.Booking)
	out["sender_username"] = v.SenderUsername
	out["receiver_username"] = v.ReceiverUsername
	out["created_at"] = v.CreatedAt
	out["updated_at"] = v.UpdatedAt
	return out
}

func renderError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{
		"error": apperr.SafeMessage(err),
		"code":  apperr.CodeOf(err),
	})
}
