package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"ufsbd-cms-server/internal/common"
	"ufsbd-cms-server/internal/config"
	"ufsbd-cms-server/internal/logger"
	"ufsbd-cms-server/internal/model"
	repo "ufsbd-cms-server/internal/repository"
	"ufsbd-cms-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const msgEmailTaken = "Un compte existe déjà avec cette adresse e-mail"

type AuthService struct {
	userStore repo.UserStore
}

func NewAuthService(userStore repo.UserStore) *AuthService {
	return &AuthService{userStore: userStore}
}

type RegisterInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *model.User
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashPassword 使用 bcrypt 对密码进行哈希。
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Register 创建访客账号；空库时首个账号为管理员
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	email := normalizeEmail(input.Email)
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(input.Password); !ok {
		return nil, common.NewValidationError(msg)
	}

	if _, err := s.userStore.FindByEmail(ctx, email); err == nil {
		return nil, common.NewConflictError(msgEmailTaken)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, backendError(err, "auth.register.lookup")
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return nil, backendError(err, "auth.register.hash")
	}

	user := &model.User{Email: email, Password: hashed, Role: model.RoleViewer}
	if err := s.userStore.CreateBootstrapping(ctx, user); err != nil {
		// 并发注册同一邮箱时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.NewConflictError(msgEmailTaken)
		}
		return nil, backendError(err, "auth.register.create")
	}
	if user.Role == model.RoleAdmin {
		logger.Info().Str("user_id", user.ID).Msg("👑 首个账号已设为管理员")
	}
	return user, nil
}

// Login 校验邮箱密码并签发会话令牌
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, common.NewValidationError("E-mail et mot de passe requis")
	}

	user, err := s.userStore.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewUnauthorizedError("Identifiants invalides")
		}
		return nil, backendError(err, "auth.login.lookup")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, common.NewUnauthorizedError("Identifiants invalides")
	}

	hours := config.Get().JWT.ExpirationHours
	if hours <= 0 {
		hours = 24
	}
	token, err := utils.GenerateLoginToken(user.ID, user.Email, time.Duration(hours)*time.Hour)
	if err != nil {
		return nil, backendError(err, "auth.login.token")
	}
	return &LoginResult{Token: token, User: user}, nil
}
