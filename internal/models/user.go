package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleSeeker    UserRole = "seeker"
	RoleRecruiter UserRole = "recruiter"
)

func ValidRole(r UserRole) bool {
	return r == RoleSeeker || r == RoleRecruiter
}

type User struct {
	gorm.Model
	Username     string   `gorm:"size:150;not null"`
	Email        string   `gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`

	Jobs         []Job         `gorm:"foreignKey:PostedBy"`
	Applications []Application `gorm:"foreignKey:SeekerID"`
}
