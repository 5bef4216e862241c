package dto

import "ufsbd-cms-server/internal/model"

// SubmitPostRequest status 字段会被忽略，新文章一律待审核
type SubmitPostRequest struct {
	Title    string             `json:"title"`
	Content  string             `json:"content"`
	Category model.PostCategory `json:"category"`
	Image    *string            `json:"image"`
	Status   *model.PostStatus  `json:"status"`
}

type UpdatePostStatusRequest struct {
	Status model.PostStatus `json:"status" binding:"required"`
}
