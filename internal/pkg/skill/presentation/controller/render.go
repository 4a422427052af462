package controller

import (
	"github.com/gin-gonic/gin"

	skill "github.com/AnujYadav540/SkillSwap/internal/pkg/skill/domain"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

func skillJSON(s *skill.Skill) gin.H {
	return gin.H{
		"id":          s.ID,
		"skill_name":  s.Name,
		"type":        s.Direction,
		"description": s.Description,
	}
}

func renderError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{
		"error": apperr.SafeMessage(err),
		"code":  apperr.CodeOf(err),
	})
}
