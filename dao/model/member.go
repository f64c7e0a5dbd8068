package model

import "gorm.io/gorm"

// ProjectMember records an accepted partner on a project. Rows are created
// or refreshed only as a side effect of application acceptance; the
// (ProjectID, UserID) pair is unique so a re-application to another need of
// the same project updates the existing membership.
type ProjectMember struct {
	gorm.Model
	ProjectID      uint         `gorm:"uniqueIndex:idx_project_user;not null"`
	UserID         uint         `gorm:"uniqueIndex:idx_project_user;not null"`
	User           User         `gorm:"foreignKey:UserID"`
	ApplicationID  uint         `gorm:"not null"`
	EngagementType NeedType     `gorm:"type:varchar(16);not null"`
	Status         MemberStatus `gorm:"type:varchar(16);not null;default:'ACTIVE'"`
}
