package handlers

import (
	"net/http"
	"strings"

	"job-board/internal/database"
	"job-board/internal/models"

	"github.com/gin-gonic/gin"
)

func ShowPostJob(c *gin.Context) {
	render(c, http.StatusOK, "post_job.html", nil)
}

func PostJob(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	location := strings.TrimSpace(c.PostForm("location"))

	if title == "" || description == "" {
		setFlash(c, "error", "Title and description are required")
		c.Redirect(http.StatusFound, "/post-job")
		return
	}

	job := models.Job{
		Title:       title,
		Description: description,
		Location:    location,
		PostedBy:    actor.UserID,
	}

	if err := database.DB.Create(&job).Error; err != nil {
		setFlash(c, "error", "Could not save job")
		c.Redirect(http.StatusFound, "/post-job")
		return
	}

	database.CreateAuditLog(database.DB, actor.UserID, "job", job.ID, "create", "Posted job: "+job.Title)

	setFlash(c, "success", "Job posted successfully")
	c.Redirect(http.StatusFound, "/recruiter/dashboard")
}
