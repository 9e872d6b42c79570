package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint
	User   User

	Entity   string `gorm:"size:50;not null"` // "retrofit_project", "tracker_project", "user"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "stage_change", "delete" etc.
	Details  string `gorm:"type:text"`
}
