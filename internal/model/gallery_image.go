package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryImage struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	FilePath   string    `json:"file_path" gorm:"size:512;not null;uniqueIndex"`
	FileSize   int64     `json:"file_size" gorm:"not null"`
	FileType   string    `json:"file_type" gorm:"size:128;not null"`
	UploadedBy string    `json:"uploaded_by" gorm:"size:36;not null;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`

	// URL 读取时计算的临时签名链接，不落库
	URL string `json:"url" gorm:"-"`
}

func (g *GalleryImage) BeforeCreate(_ *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
