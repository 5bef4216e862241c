package repository

import (
	"context"
	"ufsbd-cms-server/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) FindByIDAndStatus(ctx context.Context, id string, status model.PostStatus) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("id = ? AND status = ?", id, status).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) ListByStatus(ctx context.Context, status model.PostStatus, category model.PostCategory) ([]model.Post, error) {
	posts := make([]model.Post, 0)
	query := r.db.WithContext(ctx).Where("status = ?", status)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]model.Post, error) {
	posts := make([]model.Post, 0)
	if err := r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateStatus 先确认存在再写入；MySQL 对未变化的行返回 0 影响行数，不能据此判断不存在
func (r *PostRepository) UpdateStatus(ctx context.Context, id string, status model.PostStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.Select("id").Where("id = ?", id).First(&post).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).Where("id = ?", id).Update("status", status).Error
	})
}

func (r *PostRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PostRepository) CountByStatus(ctx context.Context) (PostStatusCounts, error) {
	var rows []struct {
		Status model.PostStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).Model(&model.Post{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return PostStatusCounts{}, err
	}

	var counts PostStatusCounts
	for _, row := range rows {
		switch row.Status {
		case model.PostStatusPending:
			counts.Pending = row.Count
		case model.PostStatusApproved:
			counts.Approved = row.Count
		case model.PostStatusRejected:
			counts.Rejected = row.Count
		}
	}
	return counts, nil
}
