package service

import (
	"context"
	"strings"
	"ufsbd-cms-server/internal/common"
	"ufsbd-cms-server/internal/logger"
	"ufsbd-cms-server/internal/model"
	repo "ufsbd-cms-server/internal/repository"
	"ufsbd-cms-server/internal/utils"
)

const msgPostNotFound = "Article introuvable"

type PostService struct {
	postStore repo.PostStore
	userStore repo.UserStore
}

func NewPostService(postStore repo.PostStore, userStore repo.UserStore) *PostService {
	return &PostService{postStore: postStore, userStore: userStore}
}

// SubmitPostInput Status 会被忽略，新文章一律待审核
type SubmitPostInput struct {
	Title         string
	Content       string
	Category      model.PostCategory
	AuthorEmail   string
	AuthorID      string
	CoverImageURL *string
	Status        *model.PostStatus
}

// PostDetail 公开详情，附带渲染后的正文
type PostDetail struct {
	model.Post
	ContentHTML string `json:"content_html"`
}

type PostStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Users    int64 `json:"users"`
}

func (s *PostService) Submit(ctx context.Context, input SubmitPostInput) (*model.Post, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" || input.Category == "" {
		return nil, common.NewValidationError("Veuillez remplir tous les champs obligatoires")
	}
	if !input.Category.Valid() {
		return nil, common.NewValidationError("Catégorie invalide")
	}
	if input.AuthorID == "" {
		return nil, common.NewUnauthorizedError("Vous devez être connecté pour publier un article")
	}

	post := &model.Post{
		Title:       title,
		Content:     input.Content,
		Category:    input.Category,
		AuthorEmail: input.AuthorEmail,
		AuthorID:    input.AuthorID,
		Status:      model.PostStatusPending,
	}
	if input.CoverImageURL != nil {
		if cover := strings.TrimSpace(*input.CoverImageURL); cover != "" {
			post.Image = &cover
		}
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		return nil, backendError(err, "post.submit")
	}
	logger.Info().Str("post_id", post.ID).Str("author_id", post.AuthorID).Msg("📝 新文章已提交，等待审核")
	return post, nil
}

func (s *PostService) ListPending(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postStore.ListByStatus(ctx, model.PostStatusPending, "")
	if err != nil {
		return nil, backendError(err, "post.list_pending")
	}
	return posts, nil
}

// ListApproved 公开列表；category 为空时返回全部分类
func (s *PostService) ListApproved(ctx context.Context, category model.PostCategory) ([]model.Post, error) {
	if category != "" && !category.Valid() {
		return nil, common.NewValidationError("Catégorie invalide")
	}
	posts, err := s.postStore.ListByStatus(ctx, model.PostStatusApproved, category)
	if err != nil {
		return nil, backendError(err, "post.list_approved")
	}
	return posts, nil
}

// GetApprovedByID 待审核、已拒绝与不存在的文章一样返回 NotFound
func (s *PostService) GetApprovedByID(ctx context.Context, id string) (*PostDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, common.NewNotFoundError(msgPostNotFound)
	}
	post, err := s.postStore.FindByIDAndStatus(ctx, id, model.PostStatusApproved)
	if err != nil {
		return nil, lookupError(err, "post.get_approved", msgPostNotFound)
	}
	html, err := utils.RenderMarkdown(post.Content)
	if err != nil {
		return nil, backendError(err, "post.render")
	}
	return &PostDetail{Post: *post, ContentHTML: html}, nil
}

// SetStatus 不校验原状态，重复设置同一状态也会成功
func (s *PostService) SetStatus(ctx context.Context, id string, status model.PostStatus) error {
	if status != model.PostStatusApproved && status != model.PostStatusRejected {
		return common.NewValidationError("Statut invalide")
	}
	if err := s.postStore.UpdateStatus(ctx, id, status); err != nil {
		return lookupError(err, "post.set_status", msgPostNotFound)
	}
	logger.Info().Str("post_id", id).Str("status", string(status)).Msg("✅ 文章审核状态已更新")
	return nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.postStore.DeleteByID(ctx, id); err != nil {
		return lookupError(err, "post.delete", msgPostNotFound)
	}
	return nil
}

func (s *PostService) ListMine(ctx context.Context, authorID string) ([]model.Post, error) {
	if authorID == "" {
		return nil, common.NewUnauthorizedError("Authentification requise")
	}
	posts, err := s.postStore.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, backendError(err, "post.list_mine")
	}
	return posts, nil
}

func (s *PostService) Stats(ctx context.Context) (*PostStats, error) {
	counts, err := s.postStore.CountByStatus(ctx)
	if err != nil {
		return nil, backendError(err, "post.stats")
	}
	users, err := s.userStore.CountAll(ctx)
	if err != nil {
		return nil, backendError(err, "post.stats.users")
	}
	return &PostStats{
		Total:    counts.Total(),
		Pending:  counts.Pending,
		Approved: counts.Approved,
		Rejected: counts.Rejected,
		Users:    users,
	}, nil
}
