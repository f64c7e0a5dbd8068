package model

import (
	"gorm.io/gorm"
)

// User is the basic entity of the system.
type User struct {
	gorm.Model
	Name     string  `gorm:"uniqueIndex;type:varchar(64);not null"`
	Nickname *string `gorm:"type:varchar(64)"`
	Email    *string `gorm:"uniqueIndex;type:varchar(128)"`
	Password *string `gorm:"type:varchar(128)"`
	Role     Role    `gorm:"type:varchar(32);not null;default:'user'"`

	Projects      []Project               `gorm:"foreignKey:OwnerID"`
	Memberships   []ProjectMember         `gorm:"foreignKey:UserID"`
	Applications  []ProjectNeedApplication `gorm:"foreignKey:ApplicantUserID"`
	Notifications []Notification          `gorm:"foreignKey:UserID"`
}

// UserInfo is the public subset embedded in responses.
type UserInfo struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Nickname *string `json:"nickname"`
}

func (u *User) Info() UserInfo {
	return UserInfo{ID: u.ID, Username: u.Name, Nickname: u.Nickname}
}
