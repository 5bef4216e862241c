package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ufsbd-cms-server/internal/common"
	"ufsbd-cms-server/internal/consts"
	"ufsbd-cms-server/internal/model"
	"ufsbd-cms-server/internal/policy"
	"ufsbd-cms-server/internal/utils"

	"github.com/gin-gonic/gin"
)

type stubRoles map[string]model.Role

func (s stubRoles) GetRole(_ context.Context, userID string) (model.Role, error) {
	if userID == "broken" {
		return "", errors.New("db down")
	}
	role, ok := s[userID]
	if !ok {
		return "", common.NewNotFoundError("Utilisateur introuvable")
	}
	return role, nil
}

func bearer(t *testing.T, id string) string {
	t.Helper()
	token, err := utils.GenerateLoginToken(id, id+"@example.org", time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken: %v", err)
	}
	return "Bearer " + token
}

func serve(r *gin.Engine, authHeader string) int {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

// 测试内容：验证缺少或格式错误的 Authorization 头返回 401。
func TestJWTAuth_RejectsMissingOrMalformed(t *testing.T) {
	r := gin.New()
	r.GET("/x", JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, h := range []string{"", "Token abc", "Bearer not-a-jwt"} {
		if code := serve(r, h); code != http.StatusUnauthorized {
			t.Fatalf("header %q 期望 401，实际为 %d", h, code)
		}
	}
}

// 测试内容：验证有效令牌会在上下文中写入身份。
func TestJWTAuth_ValidTokenSetsContext(t *testing.T) {
	r := gin.New()
	r.GET("/x", JWTAuth(), func(c *gin.Context) {
		if c.GetString(consts.ContextUserID) != "u1" || c.GetString(consts.ContextEmail) != "u1@example.org" {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	if code := serve(r, bearer(t, "u1")); code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", code)
	}
}

// 测试内容：验证能力拦截依赖从账号表加载的角色。
func TestRequireCapability(t *testing.T) {
	roles := stubRoles{"admin": model.RoleAdmin, "doc": model.RoleDoctor, "viewer": model.RoleViewer}
	r := gin.New()
	r.GET("/x", JWTAuth(), RoleLoader(roles), RequireCapability(policy.GalleryManage), func(c *gin.Context) {
		c.String(http.StatusOK, string(CurrentRole(c)))
	})

	cases := map[string]int{
		"admin":   http.StatusOK,
		"doc":     http.StatusOK,
		"viewer":  http.StatusForbidden,
		"unknown": http.StatusUnauthorized,
		"broken":  http.StatusInternalServerError,
	}
	for id, want := range cases {
		if code := serve(r, bearer(t, id)); code != want {
			t.Fatalf("账号 %s 期望 %d，实际为 %d", id, want, code)
		}
	}
}

// 测试内容：验证未经过 RoleLoader 时能力判定一律拒绝。
func TestRequireCapability_WithoutRole(t *testing.T) {
	r := gin.New()
	r.GET("/x", RequireCapability(policy.PostSubmit), func(c *gin.Context) { c.Status(http.StatusOK) })
	if code := serve(r, ""); code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", code)
	}
}

// 测试内容：验证能力拦截的 403 响应列出拥有该能力的角色。
func TestRequireCapability_ForbiddenListsRoles(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		c.Set(consts.ContextRole, model.RoleViewer)
		c.Next()
	}, RequireCapability(policy.PostModerate), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}
	var body struct {
		Code          string   `json:"code"`
		RequiredRoles []string `json:"required_roles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if body.Code != "forbidden" || len(body.RequiredRoles) != 1 || body.RequiredRoles[0] != string(model.RoleAdmin) {
		t.Fatalf("非预期的 403 响应: %s", w.Body.String())
	}
}
