package repository

import (
	"context"
	"database/sql"
	"ufsbd-cms-server/internal/model"

	"gorm.io/gorm"
)

type OrganigramRepository struct {
	db *gorm.DB
}

func (r *OrganigramRepository) Create(ctx context.Context, member *model.OrganigramMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *OrganigramRepository) FindByID(ctx context.Context, id string) (*model.OrganigramMember, error) {
	var member model.OrganigramMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *OrganigramRepository) ListActive(ctx context.Context) ([]model.OrganigramMember, error) {
	members := make([]model.OrganigramMember, 0)
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("order_index ASC").Order("created_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *OrganigramRepository) ListAll(ctx context.Context) ([]model.OrganigramMember, error) {
	members := make([]model.OrganigramMember, 0)
	if err := r.db.WithContext(ctx).
		Order("order_index ASC").Order("created_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *OrganigramRepository) MaxOrderIndex(ctx context.Context) (int, error) {
	var maxIndex sql.NullInt64
	if err := r.db.WithContext(ctx).Model(&model.OrganigramMember{}).
		Select("MAX(order_index)").Scan(&maxIndex).Error; err != nil {
		return 0, err
	}
	if !maxIndex.Valid {
		return -1, nil
	}
	return int(maxIndex.Int64), nil
}

func (r *OrganigramRepository) UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member model.OrganigramMember
		if err := tx.Where("id = ?", id).First(&member).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&member).Updates(updates).Error
	})
}

func (r *OrganigramRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OrganigramMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
