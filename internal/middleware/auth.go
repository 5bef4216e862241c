package middleware

import (
	"context"
	"net/http"
	"strings"
	"ufsbd-cms-server/internal/common"
	"ufsbd-cms-server/internal/consts"
	"ufsbd-cms-server/internal/logger"
	"ufsbd-cms-server/internal/model"
	"ufsbd-cms-server/internal/policy"
	"ufsbd-cms-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// RoleSource 按账号 id 读取当前角色
type RoleSource interface {
	GetRole(ctx context.Context, userID string) (model.Role, error)
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentification requise"})
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Format du jeton invalide"})
			return
		}

		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Jeton invalide ou expiré"})
			return
		}

		c.Set(consts.ContextUserID, claims.ID)
		c.Set(consts.ContextEmail, claims.Email)
		c.Next()
	}
}

// RoleLoader 每个请求从账号表读取角色（带缓存），令牌中不携带角色
func RoleLoader(source RoleSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(consts.ContextUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentification requise"})
			return
		}

		role, err := source.GetRole(c.Request.Context(), userID)
		if err != nil {
			if common.HasCode(err, common.ErrorCodeNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Compte introuvable"})
				return
			}
			logger.Error().Err(err).Str("user_id", userID).Msg("❌ 读取账号角色失败")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Impossible de vérifier vos droits"})
			return
		}

		c.Set(consts.ContextRole, role)
		c.Next()
	}
}

// CurrentRole 读取 RoleLoader 写入的角色，未加载时为空
func CurrentRole(c *gin.Context) model.Role {
	if v, ok := c.Get(consts.ContextRole); ok {
		if role, ok := v.(model.Role); ok {
			return role
		}
	}
	return ""
}

// RequireCapability 按能力表拦截，需在 RoleLoader 之后使用
func RequireCapability(capability policy.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.Can(capability, CurrentRole(c)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":          "Accès refusé",
				"code":           common.ErrorCodeForbidden,
				"required_roles": policy.RolesFor(capability),
			})
			return
		}
		c.Next()
	}
}
