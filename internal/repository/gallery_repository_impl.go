package repository

import (
	"context"
	"ufsbd-cms-server/internal/model"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

func (r *GalleryRepository) Create(ctx context.Context, image *model.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *GalleryRepository) FindByID(ctx context.Context, id string) (*model.GalleryImage, error) {
	var image model.GalleryImage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *GalleryRepository) FindByIDs(ctx context.Context, ids []string) (map[string]model.GalleryImage, error) {
	out := make(map[string]model.GalleryImage, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var images []model.GalleryImage
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&images).Error; err != nil {
		return nil, err
	}
	for _, img := range images {
		out[img.ID] = img
	}
	return out, nil
}

func (r *GalleryRepository) List(ctx context.Context) ([]model.GalleryImage, error) {
	images := make([]model.GalleryImage, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GalleryRepository) ListPaths(ctx context.Context) (map[string]struct{}, error) {
	var paths []string
	if err := r.db.WithContext(ctx).Model(&model.GalleryImage{}).Pluck("file_path", &paths).Error; err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		out[p] = struct{}{}
	}
	return out, nil
}

func (r *GalleryRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GalleryImage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GalleryRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.GalleryImage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
