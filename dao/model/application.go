package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectNeedApplication is a candidate's proposal to fulfill one specific
// need. OwnerUserID and NeedType are denormalized from the project and the
// need so that inbox queries avoid joins.
type ProjectNeedApplication struct {
	gorm.Model
	ProjectID       uint        `gorm:"index;not null"`
	Project         Project     `gorm:"foreignKey:ProjectID"`
	ProjectNeedID   uint        `gorm:"index;not null"`
	ProjectNeed     ProjectNeed `gorm:"foreignKey:ProjectNeedID"`
	ApplicantUserID uint        `gorm:"index;not null"`
	Applicant       User        `gorm:"foreignKey:ApplicantUserID"`
	OwnerUserID     uint        `gorm:"index;not null"`
	NeedType        NeedType    `gorm:"type:varchar(16);not null"`

	Message               string `gorm:"type:text;not null"`
	ProposedAmount        *int64
	ProposedRequiredCount *int
	ProposedEquityPercent *int
	ProposedSkillTags     datatypes.JSON

	Status          ApplicationStatus `gorm:"type:varchar(16);not null;default:'PENDING';index"`
	DecisionNote    *string           `gorm:"type:varchar(1200)"`
	DecidedByUserID *uint
	DecidedAt       *time.Time
}
