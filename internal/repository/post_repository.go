package repository

import (
	"context"
	"ufsbd-cms-server/internal/model"
)

// PostStatusCounts 各审核状态的文章数量
type PostStatusCounts struct {
	Pending  int64
	Approved int64
	Rejected int64
}

func (c PostStatusCounts) Total() int64 {
	return c.Pending + c.Approved + c.Rejected
}

type PostStore interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id string) (*model.Post, error)
	FindByIDAndStatus(ctx context.Context, id string, status model.PostStatus) (*model.Post, error)
	// ListByStatus category 为空时不过滤分类
	ListByStatus(ctx context.Context, status model.PostStatus, category model.PostCategory) ([]model.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]model.Post, error)
	UpdateStatus(ctx context.Context, id string, status model.PostStatus) error
	DeleteByID(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (PostStatusCounts, error)
}
