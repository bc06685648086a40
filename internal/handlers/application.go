package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"job-board/internal/models"
	"job-board/internal/service"
	"job-board/internal/storage"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler maps HTTP requests onto the application service; every
// role and status decision lives in the service, not here.
type ApplicationHandler struct {
	Apps    *service.Applications
	Resumes *storage.Store
}

func NewApplicationHandler(apps *service.Applications, resumes *storage.Store) *ApplicationHandler {
	return &ApplicationHandler{Apps: apps, Resumes: resumes}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || jobID == 0 {
		setFlash(c, "error", "Invalid job")
		c.Redirect(http.StatusFound, "/seeker/dashboard")
		return
	}

	coverLetter := c.PostForm("cover_letter")

	var resume *service.ResumeUpload
	if fh, err := c.FormFile("resume"); err == nil && fh.Filename != "" {
		f, err := fh.Open()
		if err != nil {
			setFlash(c, "error", "Could not read resume upload")
			c.Redirect(http.StatusFound, "/seeker/dashboard")
			return
		}
		defer f.Close()
		resume = &service.ResumeUpload{Filename: fh.Filename, Data: f}
	}

	_, err = h.Apps.Submit(actor, uint(jobID), coverLetter, resume)
	switch {
	case errors.Is(err, service.ErrDuplicateApplication):
		setFlash(c, "error", "Already applied")
	case errors.Is(err, service.ErrInvalidResume):
		setFlash(c, "error", "Upload a valid resume (pdf, doc or docx)")
	case errors.Is(err, service.ErrNotFound):
		setFlash(c, "error", "Job not found")
	case err != nil:
		setFlash(c, "error", "Could not submit application")
	default:
		setFlash(c, "success", "Application submitted")
	}
	c.Redirect(http.StatusFound, "/seeker/dashboard")
}

func (h *ApplicationHandler) Accept(c *gin.Context) {
	h.transition(c, models.StatusAccepted, "Applicant accepted")
}

func (h *ApplicationHandler) Reject(c *gin.Context) {
	h.transition(c, models.StatusRejected, "Applicant rejected")
}

func (h *ApplicationHandler) transition(c *gin.Context, target models.ApplicationStatus, successMsg string) {
	actor, ok := currentActor(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	appID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || appID == 0 {
		setFlash(c, "error", "Invalid application")
		c.Redirect(http.StatusFound, "/recruiter/dashboard")
		return
	}

	_, err = h.Apps.Transition(actor, uint(appID), target)
	switch {
	case errors.Is(err, service.ErrNotFound):
		setFlash(c, "error", "Application not found")
	case errors.Is(err, service.ErrForbidden):
		setFlash(c, "error", "Not permitted")
	case err != nil:
		setFlash(c, "error", "Could not update application")
	default:
		setFlash(c, "success", successMsg)
	}
	c.Redirect(http.StatusFound, "/recruiter/dashboard")
}

// ServeResume serves a stored resume file by its stored name.
func (h *ApplicationHandler) ServeResume(c *gin.Context) {
	path, err := h.Resumes.Path(c.Param("filename"))
	if err != nil {
		c.String(http.StatusNotFound, "file not found")
		return
	}
	c.File(path)
}
