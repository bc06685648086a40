package handlers

import (
	"net/http"

	"job-board/internal/database"
	"job-board/internal/models"

	"github.com/gin-gonic/gin"
)

func SeekerDashboard(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var jobs []models.Job
	database.DB.Preload("Poster").Order("created_at desc").Find(&jobs)

	// newest first
	var applications []models.Application
	database.DB.
		Preload("Job").
		Where("seeker_id = ?", actor.UserID).
		Order("id desc").
		Find(&applications)

	// hide jobs the seeker already applied to from the apply list
	applied := make(map[uint]bool, len(applications))
	for _, a := range applications {
		applied[a.JobID] = true
	}

	render(c, http.StatusOK, "seeker_dashboard.html", gin.H{
		"jobs":         jobs,
		"applications": applications,
		"applied":      applied,
	})
}

func RecruiterDashboard(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var jobs []models.Job
	database.DB.
		Where("posted_by = ?", actor.UserID).
		Order("created_at desc").
		Find(&jobs)

	jobIDs := make([]uint, 0, len(jobs))
	for _, j := range jobs {
		jobIDs = append(jobIDs, j.ID)
	}

	var applications []models.Application
	if len(jobIDs) > 0 {
		database.DB.
			Preload("Job").
			Preload("Seeker").
			Where("job_id IN ?", jobIDs).
			Order("id desc").
			Find(&applications)
	}

	render(c, http.StatusOK, "recruiter_dashboard.html", gin.H{
		"jobs":         jobs,
		"applications": applications,
	})
}
