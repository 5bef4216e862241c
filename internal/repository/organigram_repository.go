package repository

import (
	"context"
	"ufsbd-cms-server/internal/model"
)

type OrganigramStore interface {
	Create(ctx context.Context, member *model.OrganigramMember) error
	FindByID(ctx context.Context, id string) (*model.OrganigramMember, error)
	ListActive(ctx context.Context) ([]model.OrganigramMember, error)
	ListAll(ctx context.Context) ([]model.OrganigramMember, error)
	// MaxOrderIndex 没有成员时返回 -1
	MaxOrderIndex(ctx context.Context) (int, error)
	UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteByID(ctx context.Context, id string) error
}
