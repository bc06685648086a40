package database

import (
	"job-board/internal/models"

	"gorm.io/gorm"
)

// CreateAuditLog records an action in the audit trail. Best effort: a failed
// write never fails the caller.
func CreateAuditLog(db *gorm.DB, userID uint, entity string, entityID uint, action, details string) {
	if db == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = db.Create(&record).Error
}
