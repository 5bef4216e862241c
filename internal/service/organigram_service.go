package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"ufsbd-cms-server/internal/common"
	"ufsbd-cms-server/internal/logger"
	"ufsbd-cms-server/internal/model"
	repo "ufsbd-cms-server/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const msgMemberNotFound = "Membre introuvable"

type OrganigramService struct {
	store        repo.OrganigramStore
	galleryStore repo.GalleryStore
	gallery      *GalleryService
}

func NewOrganigramService(store repo.OrganigramStore, galleryStore repo.GalleryStore, gallery *GalleryService) *OrganigramService {
	return &OrganigramService{store: store, galleryStore: galleryStore, gallery: gallery}
}

type CreateMemberInput struct {
	Name        string
	Title       string
	Role        model.OrganigramRole
	ImageID     *string
	Description *string
	Members     []string
	Color       *string
	OrderIndex  *int
	IsActive    *bool
}

// UpdateMemberInput 只更新非 nil / 已提供的字段
type UpdateMemberInput struct {
	Name        *string
	Title       *string
	Role        *model.OrganigramRole
	ImageID     NullableString
	Description NullableString
	Members     *[]string
	Color       *string
	OrderIndex  *int
	IsActive    *bool
}

func cleanMembers(members []string) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (s *OrganigramService) ensureImageExists(ctx context.Context, imageID string) error {
	if _, err := s.galleryStore.FindByID(ctx, imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewValidationError(msgImageNotFound)
		}
		return backendError(err, "organigram.image_lookup")
	}
	return nil
}

// ListActive 公开组织架构：启用成员按 order_index 升序
func (s *OrganigramService) ListActive(ctx context.Context) ([]model.OrganigramMember, error) {
	members, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, backendError(err, "organigram.list_active")
	}
	if err := s.resolveImages(ctx, members); err != nil {
		return nil, err
	}
	return members, nil
}

// ListAll 管理界面使用，包含停用成员
func (s *OrganigramService) ListAll(ctx context.Context) ([]model.OrganigramMember, error) {
	members, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, backendError(err, "organigram.list_all")
	}
	if err := s.resolveImages(ctx, members); err != nil {
		return nil, err
	}
	return members, nil
}

func (s *OrganigramService) GetByID(ctx context.Context, id string) (*model.OrganigramMember, error) {
	member, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "organigram.get", msgMemberNotFound)
	}
	one := []model.OrganigramMember{*member}
	if err := s.resolveImages(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

func (s *OrganigramService) Create(ctx context.Context, input CreateMemberInput, creatorID string) (*model.OrganigramMember, error) {
	name := strings.TrimSpace(input.Name)
	title := strings.TrimSpace(input.Title)
	if name == "" || title == "" {
		return nil, common.NewValidationError("Le nom et le titre sont obligatoires")
	}
	if !input.Role.Valid() {
		return nil, common.NewValidationError("Rôle invalide")
	}
	if creatorID == "" {
		return nil, common.NewUnauthorizedError("Authentification requise")
	}

	member := &model.OrganigramMember{
		Name:        name,
		Title:       title,
		Role:        input.Role,
		Description: nonEmpty(input.Description),
		Members:     datatypes.JSONSlice[string](cleanMembers(input.Members)),
		Color:       input.Role.DefaultColor(),
		IsActive:    true,
		CreatedBy:   creatorID,
	}
	if color := nonEmpty(input.Color); color != nil {
		member.Color = *color
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}
	if imageID := nonEmpty(input.ImageID); imageID != nil {
		if err := s.ensureImageExists(ctx, *imageID); err != nil {
			return nil, err
		}
		member.ImageID = imageID
	}
	if input.OrderIndex != nil {
		member.OrderIndex = *input.OrderIndex
	} else {
		maxIndex, err := s.store.MaxOrderIndex(ctx)
		if err != nil {
			return nil, backendError(err, "organigram.create.order")
		}
		member.OrderIndex = maxIndex + 1
	}

	if err := s.store.Create(ctx, member); err != nil {
		return nil, backendError(err, "organigram.create")
	}
	logger.Info().Str("member_id", member.ID).Str("role", string(member.Role)).Msg("👥 组织架构成员已创建")
	return s.GetByID(ctx, member.ID)
}

func (s *OrganigramService) Update(ctx context.Context, id string, input UpdateMemberInput) (*model.OrganigramMember, error) {
	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "organigram.update.lookup", msgMemberNotFound)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, common.NewValidationError("Le nom est obligatoire")
		}
		updates["name"] = name
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, common.NewValidationError("Le titre est obligatoire")
		}
		updates["title"] = title
	}
	role := current.Role
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, common.NewValidationError("Rôle invalide")
		}
		role = *input.Role
		updates["role"] = role
	}
	if input.Color != nil {
		if color := strings.TrimSpace(*input.Color); color != "" {
			updates["color"] = color
		} else {
			updates["color"] = role.DefaultColor()
		}
	}
	if input.ImageID.Set {
		imageID := nonEmpty(input.ImageID.Value)
		if imageID != nil {
			if err := s.ensureImageExists(ctx, *imageID); err != nil {
				return nil, err
			}
		}
		updates["image_id"] = imageID
	}
	if input.Description.Set {
		updates["description"] = nonEmpty(input.Description.Value)
	}
	if input.Members != nil {
		updates["members"] = datatypes.JSONSlice[string](cleanMembers(*input.Members))
	}
	if input.OrderIndex != nil {
		updates["order_index"] = *input.OrderIndex
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if err := s.store.UpdateFields(ctx, id, updates); err != nil {
		return nil, lookupError(err, "organigram.update", msgMemberNotFound)
	}
	return s.GetByID(ctx, id)
}

// UpdateImage 只修改成员的 image_id
func (s *OrganigramService) UpdateImage(ctx context.Context, memberID, imageID string) (*model.OrganigramMember, error) {
	imageID = strings.TrimSpace(imageID)
	if imageID == "" {
		return nil, common.NewValidationError(msgImageNotFound)
	}
	if err := s.ensureImageExists(ctx, imageID); err != nil {
		return nil, err
	}
	if err := s.store.UpdateFields(ctx, memberID, map[string]interface{}{"image_id": imageID}); err != nil {
		return nil, lookupError(err, "organigram.update_image", msgMemberNotFound)
	}
	return s.GetByID(ctx, memberID)
}

// Delete 受保护职位拒绝删除；引用的图片保持不变
func (s *OrganigramService) Delete(ctx context.Context, id string) error {
	member, err := s.store.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, "organigram.delete.lookup", msgMemberNotFound)
	}
	if member.Role.Protected() {
		return common.NewProtectedRoleError(fmt.Sprintf("Impossible de supprimer un membre avec un rôle protégé (%s)", member.Role.Label()))
	}
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return lookupError(err, "organigram.delete", msgMemberNotFound)
	}
	logger.Info().Str("member_id", id).Msg("🗑️ 组织架构成员已删除")
	return nil
}

func (s *OrganigramService) AvailableRoles() []model.OrganigramRoleInfo {
	out := make([]model.OrganigramRoleInfo, len(model.OrganigramRoles))
	copy(out, model.OrganigramRoles)
	return out
}

// resolveImages 关联图片并签名；引用已失效的成员标记为 ImageMissing
func (s *OrganigramService) resolveImages(ctx context.Context, members []model.OrganigramMember) error {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		if m.ImageID != nil {
			ids = append(ids, *m.ImageID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	found, err := s.galleryStore.FindByIDs(ctx, ids)
	if err != nil {
		return backendError(err, "organigram.resolve_images")
	}
	images := make([]model.GalleryImage, 0, len(found))
	for _, img := range found {
		images = append(images, img)
	}
	if err := s.gallery.signAll(ctx, images); err != nil {
		return err
	}
	signed := make(map[string]model.GalleryImage, len(images))
	for _, img := range images {
		signed[img.ID] = img
	}

	for i := range members {
		if members[i].ImageID == nil {
			continue
		}
		img, ok := signed[*members[i].ImageID]
		if !ok {
			members[i].ImageMissing = true
			continue
		}
		members[i].Image = &model.MemberImage{ID: img.ID, Name: img.Name, URL: img.URL}
	}
	return nil
}
