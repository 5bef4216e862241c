package handler

import (
	"net/http"
	"ufsbd-cms-server/internal/common/httpx"
	"ufsbd-cms-server/internal/dto"
	"ufsbd-cms-server/internal/model"

	"github.com/gin-gonic/gin"
)

// ListPublished 公开博客列表，可按 category 过滤
func (h *PostHandler) ListPublished(c *gin.Context) {
	posts, err := h.postService.ListApproved(c.Request.Context(), model.PostCategory(c.Query("category")))
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de charger les articles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": posts})
}

// GetPublished 未通过审核的文章同样返回 404，前端据此跳回博客首页
func (h *PostHandler) GetPublished(c *gin.Context) {
	post, err := h.postService.GetApprovedByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de charger l'article")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) ListPending(c *gin.Context) {
	posts, err := h.postService.ListPending(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de charger les articles en attente")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": posts})
}

func (h *PostHandler) ListApproved(c *gin.Context) {
	posts, err := h.postService.ListApproved(c.Request.Context(), "")
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de charger les articles publiés")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": posts})
}

func (h *PostHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdatePostStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c)
		return
	}

	if err := h.postService.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		httpx.WriteServiceError(c, err, "Impossible de modifier le statut")
		return
	}

	msg := "Article approuvé"
	if req.Status == model.PostStatusRejected {
		msg = "Article rejeté"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpx.WriteServiceError(c, err, "Impossible de supprimer l'article")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article supprimé"})
}
