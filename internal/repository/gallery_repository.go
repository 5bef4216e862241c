package repository

import (
	"context"
	"ufsbd-cms-server/internal/model"
)

type GalleryStore interface {
	Create(ctx context.Context, image *model.GalleryImage) error
	FindByID(ctx context.Context, id string) (*model.GalleryImage, error)
	// FindByIDs 返回 id → 图片，缺失的 id 不出现在结果中
	FindByIDs(ctx context.Context, ids []string) (map[string]model.GalleryImage, error)
	List(ctx context.Context) ([]model.GalleryImage, error)
	// ListPaths 全部元数据中的文件路径
	ListPaths(ctx context.Context) (map[string]struct{}, error)
	DeleteByID(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
}
