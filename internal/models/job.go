package models

import "gorm.io/gorm"

type Job struct {
	gorm.Model
	Title       string `gorm:"size:150;not null"`
	Description string `gorm:"type:text;not null"`
	Location    string `gorm:"size:100"` // optional

	PostedBy uint `gorm:"not null;index"`
	Poster   User `gorm:"foreignKey:PostedBy"`

	Applications []Application
}
