package service

import (
	"context"
	"time"
	"ufsbd-cms-server/internal/common"
	"ufsbd-cms-server/internal/model"
	repo "ufsbd-cms-server/internal/repository"
)

const roleCacheTTL = time.Minute

type UserService struct {
	userStore repo.UserStore
	roleCache *ttlCache
}

func NewUserService(userStore repo.UserStore) *UserService {
	return &UserService{userStore: userStore, roleCache: newTTLCache("user_role")}
}

// GetRole 读取账号当前角色，缓存 1 分钟；角色变更时主动失效
func (s *UserService) GetRole(ctx context.Context, userID string) (model.Role, error) {
	if userID == "" {
		return "", common.NewUnauthorizedError("Authentification requise")
	}
	if cached, ok := s.roleCache.Get(ctx, userID); ok {
		return model.Role(cached), nil
	}

	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return "", lookupError(err, "user.role", "Utilisateur introuvable")
	}
	s.roleCache.Set(ctx, userID, string(user.Role), roleCacheTTL)
	return user.Role, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, common.NewUnauthorizedError("Authentification requise")
	}
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, "user.profile", "Utilisateur introuvable")
	}
	return user, nil
}

// ListUsers 最新注册优先
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, backendError(err, "user.list")
	}
	return users, nil
}

// UpdateRole 管理员修改账号角色；不允许修改自己的角色
func (s *UserService) UpdateRole(ctx context.Context, actorID, targetID string, role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, common.NewValidationError("Rôle invalide")
	}
	if actorID != "" && actorID == targetID {
		return nil, common.NewForbiddenError("Vous ne pouvez pas modifier votre propre rôle")
	}

	if err := s.userStore.UpdateRole(ctx, targetID, role); err != nil {
		return nil, lookupError(err, "user.update_role", "Utilisateur introuvable")
	}
	s.ClearRoleCache(ctx, targetID)

	user, err := s.userStore.FindByID(ctx, targetID)
	if err != nil {
		return nil, lookupError(err, "user.update_role.reload", "Utilisateur introuvable")
	}
	return user, nil
}

func (s *UserService) ClearRoleCache(ctx context.Context, userID string) {
	s.roleCache.Delete(ctx, userID)
}
