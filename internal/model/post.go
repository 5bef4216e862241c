package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostStatus string

const (
	PostStatusPending  PostStatus = "pending"
	PostStatusApproved PostStatus = "approved"
	PostStatusRejected PostStatus = "rejected"
)

type PostCategory string

const (
	CategoryPrevention PostCategory = "prevention"
	CategoryActualites PostCategory = "actualites"
	CategoryRecherche  PostCategory = "recherche"
	CategoryFormation  PostCategory = "formation"
	CategoryConseils   PostCategory = "conseils"
)

type CategoryInfo struct {
	Value       PostCategory `json:"value"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
}

// PostCategories 博客分类（有序），前端下拉框与校验共用
var PostCategories = []CategoryInfo{
	{Value: CategoryPrevention, Label: "Prévention", Description: "Conseils et mesures préventives"},
	{Value: CategoryActualites, Label: "Actualités", Description: "Nouvelles et événements"},
	{Value: CategoryRecherche, Label: "Recherche", Description: "Études et découvertes"},
	{Value: CategoryFormation, Label: "Formation", Description: "Éducation et apprentissage"},
	{Value: CategoryConseils, Label: "Conseils", Description: "Recommandations pratiques"},
}

func (c PostCategory) Valid() bool {
	for _, info := range PostCategories {
		if info.Value == c {
			return true
		}
	}
	return false
}

type Post struct {
	ID          string       `json:"id" gorm:"primaryKey;size:36"`
	Title       string       `json:"title" gorm:"size:255;not null"`
	Content     string       `json:"content" gorm:"type:text;not null"`
	Category    PostCategory `json:"category" gorm:"size:32;not null;index"`
	AuthorEmail string       `json:"author_email" gorm:"size:255"`
	AuthorID    string       `json:"author_id" gorm:"size:36;not null;index"`
	Image       *string      `json:"image"`
	Status      PostStatus   `json:"status" gorm:"size:16;not null;default:pending;index"`
	CreatedAt   time.Time    `json:"created_at" gorm:"index"`
}

func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
