package model

import "gorm.io/gorm"

// Project is an entrepreneurial project looking for partners.
type Project struct {
	gorm.Model
	OwnerID           uint          `gorm:"index;not null"`
	Owner             User          `gorm:"foreignKey:OwnerID"`
	Title             string        `gorm:"type:varchar(160);not null"`
	Summary           *string       `gorm:"type:text"`
	Status            ProjectStatus `gorm:"type:varchar(16);not null;default:'DRAFT';index"`
	Visibility        Visibility    `gorm:"type:varchar(16);not null;default:'PRIVATE'"`
	OwnerEquityPercent int          `gorm:"not null;default:100"`
	TotalCapital      *int64
	OwnerContribution *int64

	Needs     []ProjectNeed     `gorm:"foreignKey:ProjectID"`
	Members   []ProjectMember   `gorm:"foreignKey:ProjectID"`
	Documents []ProjectDocument `gorm:"foreignKey:ProjectID"`
}

// ProjectDocument is a file attached to a project, stored in the object
// store under ObjectKey.
type ProjectDocument struct {
	gorm.Model
	ProjectID   uint   `gorm:"index;not null"`
	Name        string `gorm:"type:varchar(160);not null"`
	ObjectKey   string `gorm:"type:varchar(160);uniqueIndex;not null"`
	ContentType string `gorm:"type:varchar(128)"`
	Size        int64
	UploadedBy  uint
}
