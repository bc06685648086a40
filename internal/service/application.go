package service

import (
	"errors"
	"fmt"
	"io"

	"job-board/internal/database"
	"job-board/internal/models"
	"job-board/internal/notify"
	"job-board/internal/storage"

	"gorm.io/gorm"
)

var (
	ErrDuplicateApplication = errors.New("already applied to this job")
	ErrInvalidResume        = errors.New("resume file type not allowed")
	ErrForbidden            = errors.New("action not permitted")
	ErrNotFound             = errors.New("record not found")
)

// Actor is the authenticated identity a handler derives from the session.
// The service never reads session state itself.
type Actor struct {
	UserID uint
	Role   models.UserRole
}

// ResumeUpload is an optional file attached to a submission.
type ResumeUpload struct {
	Filename string
	Data     io.Reader
}

// Applications owns every mutation of application records: one place for the
// role gates and status transitions instead of a copy per route.
type Applications struct {
	DB       *gorm.DB
	Resumes  *storage.Store
	Notifier notify.Notifier
}

func NewApplications(db *gorm.DB, resumes *storage.Store, notifier notify.Notifier) *Applications {
	return &Applications{DB: db, Resumes: resumes, Notifier: notifier}
}

// Submit creates a pending application for the acting seeker. The duplicate
// check and the insert run in one transaction; the (job_id, seeker_id) unique
// index backstops concurrent submissions the check itself cannot see.
func (s *Applications) Submit(actor Actor, jobID uint, coverLetter string, resume *ResumeUpload) (*models.Application, error) {
	if actor.Role != models.RoleSeeker {
		return nil, ErrForbidden
	}

	if resume != nil && !storage.AllowedExtension(resume.Filename) {
		return nil, ErrInvalidResume
	}

	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var seeker models.User
	if err := s.DB.First(&seeker, actor.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	app := models.Application{
		JobID:       job.ID,
		SeekerID:    seeker.ID,
		CoverLetter: coverLetter,
		Status:      models.StatusPending,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Application{}).
			Where("job_id = ? AND seeker_id = ?", job.ID, seeker.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateApplication
		}

		if resume != nil {
			stored, err := s.Resumes.Save(resume.Filename, resume.Data)
			if err != nil {
				return fmt.Errorf("store resume: %w", err)
			}
			app.Resume = stored
		}

		return tx.Create(&app).Error
	})
	if err != nil {
		return nil, err
	}

	database.CreateAuditLog(s.DB, seeker.ID, "application", app.ID, "create",
		fmt.Sprintf("Applied to job %q", job.Title))
	notify.Dispatch(s.Notifier, seeker.Email,
		"Application received: "+job.Title,
		fmt.Sprintf("Hi %s,\n\nYour application for %q was submitted and is pending review.\n", seeker.Username, job.Title))

	return &app, nil
}

// Transition moves an application to a terminal status on behalf of the
// recruiter who posted the parent job. Re-asserting the current status is a
// no-op that fires no notification; once a terminal status is set, moving to
// the other terminal status is forbidden.
func (s *Applications) Transition(actor Actor, appID uint, target models.ApplicationStatus) (*models.Application, error) {
	if target != models.StatusAccepted && target != models.StatusRejected {
		return nil, fmt.Errorf("invalid target status %q", target)
	}

	var app models.Application
	if err := s.DB.Preload("Job").Preload("Seeker").First(&app, appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if actor.Role != models.RoleRecruiter || app.Job.PostedBy != actor.UserID {
		return nil, ErrForbidden
	}

	if app.Status == target {
		// idempotent no-op, no second notification
		return &app, nil
	}
	if app.Status.IsTerminal() {
		return nil, ErrForbidden
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&app).Update("status", target).Error
	})
	if err != nil {
		return nil, err
	}
	app.Status = target

	database.CreateAuditLog(s.DB, actor.UserID, "application", app.ID, "status_change",
		fmt.Sprintf("Application %d for %q marked %s", app.ID, app.Job.Title, target))

	subject := "Update on your application: " + app.Job.Title
	var body string
	if target == models.StatusAccepted {
		body = fmt.Sprintf("Hi %s,\n\nGood news: your application for %q was accepted.\n", app.Seeker.Username, app.Job.Title)
	} else {
		body = fmt.Sprintf("Hi %s,\n\nYour application for %q was not successful this time.\n", app.Seeker.Username, app.Job.Title)
	}
	notify.Dispatch(s.Notifier, app.Seeker.Email, subject, body)

	return &app, nil
}
