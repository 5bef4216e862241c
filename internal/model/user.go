package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role 站点账号角色，按字符串相等比较
type Role string

const (
	RoleViewer Role = "viewer"
	RoleAuthor Role = "author"
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
)

// Roles 全部合法角色
var Roles = []Role{RoleViewer, RoleAuthor, RoleDoctor, RoleAdmin}

func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      Role      `json:"role" gorm:"size:16;not null;default:viewer;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleViewer
	}
	return nil
}
