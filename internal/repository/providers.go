package repository

import (
	"gorm.io/gorm"
)

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewPostRepository(db *gorm.DB) PostStore {
	return &PostRepository{db: db}
}

func NewGalleryRepository(db *gorm.DB) GalleryStore {
	return &GalleryRepository{db: db}
}

func NewOrganigramRepository(db *gorm.DB) OrganigramStore {
	return &OrganigramRepository{db: db}
}
