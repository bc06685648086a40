package handlers

import (
	"net/http"

	"job-board/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	sess := sessions.Default(c)
	roleStr, _ := sess.Get("role").(string)

	switch models.UserRole(roleStr) {
	case models.RoleRecruiter:
		c.Redirect(http.StatusFound, "/recruiter/dashboard")
	case models.RoleSeeker:
		c.Redirect(http.StatusFound, "/seeker/dashboard")
	default:
		c.Redirect(http.StatusFound, "/login")
	}
}
