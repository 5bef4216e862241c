package handler

import (
	"net/http"
	"strings"
	"testing"

	"ufsbd-cms-server/internal/model"

	"github.com/gin-gonic/gin"
)

func postEngine(env *handlerEnv) *gin.Engine {
	ph := NewPostHandler(env.post)
	uh := NewUserHandler(env.user, env.post)
	r := gin.New()
	r.GET("/posts", ph.ListPublished)
	r.GET("/posts/:id", ph.GetPublished)

	user := r.Group("/user", asUser("author-1", model.RoleAuthor))
	user.POST("/posts", uh.SubmitPost)
	user.GET("/posts", uh.ListMyPosts)
	user.GET("/capabilities", uh.GetCapabilities)

	admin := r.Group("/admin", asUser("admin-1", model.RoleAdmin))
	admin.GET("/posts/pending", ph.ListPending)
	admin.PATCH("/posts/:id/status", ph.UpdateStatus)
	admin.DELETE("/posts/:id", ph.Delete)
	return r
}

// 测试内容：验证提交的文章总是待审核，审核前公开接口返回 404。
func TestSubmitPost_AlwaysPendingUntilApproved(t *testing.T) {
	env := setupHandlerEnv(t)
	r := postEngine(env)

	w := doJSON(r, http.MethodPost, "/user/posts", map[string]any{
		"title": "Brossage", "content": "# Deux minutes\n\nMatin et soir.", "category": "conseils", "status": "approved",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d: %s", w.Code, w.Body.String())
	}
	post, _ := decodeBody(t, w)["post"].(map[string]any)
	id, _ := post["id"].(string)
	if post["status"] != string(model.PostStatusPending) {
		t.Fatalf("期望 pending，实际为 %v", post["status"])
	}
	if post["author_email"] != "author-1@ufsbd.fr" {
		t.Fatalf("期望作者邮箱来自会话，实际为 %v", post["author_email"])
	}

	if w = doJSON(r, http.MethodGet, "/posts/"+id, nil); w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}

	// 重复审核同一状态也成功
	for i := 0; i < 2; i++ {
		w = doJSON(r, http.MethodPatch, "/admin/posts/"+id+"/status", map[string]any{"status": "approved"})
		if w.Code != http.StatusOK {
			t.Fatalf("第 %d 次审核期望 200，实际为 %d", i+1, w.Code)
		}
	}

	w = doJSON(r, http.MethodGet, "/posts/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	if html, _ := decodeBody(t, w)["content_html"].(string); !strings.Contains(html, "<h1") {
		t.Fatalf("期望返回渲染后的 HTML，实际为 %q", html)
	}

	w = doJSON(r, http.MethodGet, "/posts?category=conseils", nil)
	if list, _ := decodeBody(t, w)["list"].([]any); len(list) != 1 {
		t.Fatalf("期望 1 篇已发布文章，实际为 %d", len(list))
	}
}

// 测试内容：验证缺少字段或非法状态返回 400，删除不存在的文章返回 404。
func TestPostHandlers_Errors(t *testing.T) {
	env := setupHandlerEnv(t)
	r := postEngine(env)

	if w := doJSON(r, http.MethodPost, "/user/posts", map[string]any{"title": "x"}); w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}
	if w := doJSON(r, http.MethodPatch, "/admin/posts/any/status", map[string]any{"status": "pending"}); w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/admin/posts/missing", nil); w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/posts?category=unknown", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}
}

// 测试内容：验证能力接口按当前角色返回能力表。
func TestGetCapabilities(t *testing.T) {
	env := setupHandlerEnv(t)
	r := postEngine(env)

	w := doJSON(r, http.MethodGet, "/user/capabilities", nil)
	caps, _ := decodeBody(t, w)["capabilities"].(map[string]any)
	if caps["post.submit"] != true || caps["post.moderate"] != false {
		t.Fatalf("非预期的能力表: %v", caps)
	}
}
