package controller

import (
	"github.com/gin-gonic/gin"

	user "github.com/AnujYadav540/SkillSwap/internal/pkg/user/domain"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// userJSON is the public shape of an account; the password hash never leaves
// the persistence layer boundary.
func userJSON(u *user.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"username":  u.Username,
		"email":     u.Email,
		"bio":       u.Bio,
		"rating":    u.Rating,
		"latitude":  u.Latitude,
		"longitude": u.Longitude,
		"city":      u.City,
		"country":   u.Country,
	}
}

func renderError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{
		"error": apperr.SafeMessage(err),
		"code":  apperr.CodeOf(err),
	})
}
