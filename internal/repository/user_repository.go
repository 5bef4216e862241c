package repository

import (
	"context"
	"ufsbd-cms-server/internal/model"
)

type UserStore interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// CreateBootstrapping 空库时首个账号提升为管理员
	CreateBootstrapping(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id string, role model.Role) error
	CountAll(ctx context.Context) (int64, error)
}
