package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrganigramMember struct {
	ID          string                      `json:"id" gorm:"primaryKey;size:36"`
	Name        string                      `json:"name" gorm:"size:255;not null"`
	Title       string                      `json:"title" gorm:"size:255;not null"`
	Role        OrganigramRole              `json:"role" gorm:"size:32;not null;index"`
	ImageID     *string                     `json:"image_id" gorm:"size:36;index"`
	Description *string                     `json:"description" gorm:"type:text"`
	Members     datatypes.JSONSlice[string] `json:"members"`
	Color       string                      `json:"color" gorm:"size:64"`
	OrderIndex  int                         `json:"order_index" gorm:"not null;default:0;index"`
	IsActive    bool                        `json:"is_active" gorm:"not null;index"`
	CreatedBy   string                      `json:"created_by" gorm:"size:36"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`

	// Image 弱引用的图库图片，读取时解析；引用失效时为 nil 且 ImageMissing 为 true
	Image        *MemberImage `json:"image" gorm:"-"`
	ImageMissing bool         `json:"image_missing" gorm:"-"`
}

// MemberImage 成员头像的展示信息
type MemberImage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (m *OrganigramMember) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
