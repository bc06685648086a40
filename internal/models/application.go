package models

import "gorm.io/gorm"

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// IsTerminal reports whether the status admits no further transition.
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

type Application struct {
	gorm.Model
	JobID uint `gorm:"not null;uniqueIndex:idx_job_seeker"`
	Job   Job

	SeekerID uint `gorm:"not null;uniqueIndex:idx_job_seeker"`
	Seeker   User `gorm:"foreignKey:SeekerID"`

	CoverLetter string            `gorm:"type:text"`
	Resume      string            `gorm:"size:255"` // stored filename, may be empty
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:pending"`
}
