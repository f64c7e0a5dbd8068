package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notification is an in-app notification delivered to one user. Rows are
// written best-effort by pkg/alert; a failed insert is logged and dropped,
// never propagated to the operation that triggered it.
type Notification struct {
	gorm.Model
	UserID            uint             `gorm:"index;not null"`
	Type              NotificationType `gorm:"type:varchar(32);not null"`
	Title             string           `gorm:"type:varchar(160);not null"`
	Message           string           `gorm:"type:text;not null"`
	ProjectID         *uint            `gorm:"index"`
	TriggeredByUserID *uint
	Metadata          datatypes.JSON
	ReadAt            *time.Time `gorm:"index"`
}
