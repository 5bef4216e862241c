package handler

import (
	"net/http"
	"ufsbd-cms-server/internal/common/httpx"
	"ufsbd-cms-server/internal/dto"
	"ufsbd-cms-server/internal/middleware"
	"ufsbd-cms-server/internal/model"
	"ufsbd-cms-server/internal/policy"
	"ufsbd-cms-server/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de charger le profil")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"role":       user.Role,
		"is_admin":   policy.IsAllowed(model.RoleAdmin, user.Role),
		"created_at": user.CreatedAt,
	})
}

// GetCapabilities 前端据此决定显示哪些入口，与路由拦截使用同一张能力表
func (h *UserHandler) GetCapabilities(c *gin.Context) {
	role := middleware.CurrentRole(c)
	c.JSON(http.StatusOK, gin.H{
		"role":         role,
		"capabilities": policy.Capabilities(role),
	})
}

func (h *UserHandler) SubmitPost(c *gin.Context) {
	var req dto.SubmitPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c)
		return
	}

	post, err := h.postService.Submit(c.Request.Context(), service.SubmitPostInput{
		Title:         req.Title,
		Content:       req.Content,
		Category:      req.Category,
		AuthorEmail:   currentEmail(c),
		AuthorID:      currentUserID(c),
		CoverImageURL: req.Image,
		Status:        req.Status,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de publier l'article")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Article soumis avec succès ! Il sera publié après validation par un administrateur.",
		"post":    post,
	})
}

func (h *UserHandler) ListMyPosts(c *gin.Context) {
	posts, err := h.postService.ListMine(c.Request.Context(), currentUserID(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de charger vos articles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": posts})
}
