package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectNeed is a resource gap on a project that partners can fulfill.
type ProjectNeed struct {
	gorm.Model
	ProjectID   uint     `gorm:"index;not null"`
	Project     Project  `gorm:"foreignKey:ProjectID"`
	Type        NeedType `gorm:"type:varchar(16);not null"`
	Title       string   `gorm:"type:varchar(160);not null"`
	Description *string  `gorm:"type:text"`

	// Amount is the target capital for FINANCIAL needs.
	Amount *int64
	// RequiredCount is the headcount for SKILL needs.
	RequiredCount int `gorm:"not null;default:1"`
	// EquityShare is the percentage of ownership offered for filling this
	// need. The sum across a project plus OwnerEquityPercent may transiently
	// exceed 100; that is surfaced as a read-time anomaly, never rejected.
	EquityShare *int
	SkillTags   datatypes.JSON

	// IsFilled flips false->true when accepted applications reach the
	// need's target. It is never reset by the review flow.
	IsFilled bool `gorm:"not null;default:false"`
}
