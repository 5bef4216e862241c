package dto

import (
	"ufsbd-cms-server/internal/model"
	"ufsbd-cms-server/internal/service"
)

type CreateMemberRequest struct {
	Name        string               `json:"name"`
	Title       string               `json:"title"`
	Role        model.OrganigramRole `json:"role"`
	ImageID     *string              `json:"image_id"`
	Description *string              `json:"description"`
	Members     []string             `json:"members"`
	Color       *string              `json:"color"`
	OrderIndex  *int                 `json:"order_index"`
	IsActive    *bool                `json:"is_active"`
}

func (r CreateMemberRequest) ToInput() service.CreateMemberInput {
	return service.CreateMemberInput{
		Name:        r.Name,
		Title:       r.Title,
		Role:        r.Role,
		ImageID:     r.ImageID,
		Description: r.Description,
		Members:     r.Members,
		Color:       r.Color,
		OrderIndex:  r.OrderIndex,
		IsActive:    r.IsActive,
	}
}

// UpdateMemberRequest 未出现的字段保持不变；image_id 与 description 可显式置 null
type UpdateMemberRequest struct {
	Name        *string                `json:"name"`
	Title       *string                `json:"title"`
	Role        *model.OrganigramRole  `json:"role"`
	ImageID     service.NullableString `json:"image_id"`
	Description service.NullableString `json:"description"`
	Members     *[]string              `json:"members"`
	Color       *string                `json:"color"`
	OrderIndex  *int                   `json:"order_index"`
	IsActive    *bool                  `json:"is_active"`
}

func (r UpdateMemberRequest) ToInput() service.UpdateMemberInput {
	return service.UpdateMemberInput{
		Name:        r.Name,
		Title:       r.Title,
		Role:        r.Role,
		ImageID:     r.ImageID,
		Description: r.Description,
		Members:     r.Members,
		Color:       r.Color,
		OrderIndex:  r.OrderIndex,
		IsActive:    r.IsActive,
	}
}

type UpdateMemberImageRequest struct {
	ImageID string `json:"image_id" binding:"required"`
}
