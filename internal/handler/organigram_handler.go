package handler

import (
	"net/http"
	"ufsbd-cms-server/internal/common/httpx"
	"ufsbd-cms-server/internal/dto"

	"github.com/gin-gonic/gin"
)

// ListPublic 公开组织架构
func (h *OrganigramHandler) ListPublic(c *gin.Context) {
	members, err := h.organigramService.ListActive(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de charger l'organigramme")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": members})
}

func (h *OrganigramHandler) Roles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"list": h.organigramService.AvailableRoles()})
}

func (h *OrganigramHandler) ListAll(c *gin.Context) {
	members, err := h.organigramService.ListAll(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de charger l'organigramme")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": members})
}

func (h *OrganigramHandler) Get(c *gin.Context) {
	member, err := h.organigramService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de charger le membre")
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *OrganigramHandler) Create(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c)
		return
	}

	member, err := h.organigramService.Create(c.Request.Context(), req.ToInput(), currentUserID(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de créer le membre")
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *OrganigramHandler) Update(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c)
		return
	}

	member, err := h.organigramService.Update(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de modifier le membre")
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *OrganigramHandler) UpdateImage(c *gin.Context) {
	var req dto.UpdateMemberImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c)
		return
	}

	member, err := h.organigramService.UpdateImage(c.Request.Context(), c.Param("id"), req.ImageID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible d'associer l'image")
		return
	}
	c.JSON(http.StatusOK, member)
}

// Delete 受保护职位返回 409
func (h *OrganigramHandler) Delete(c *gin.Context) {
	if err := h.organigramService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpx.WriteServiceError(c, err, "Impossible de supprimer le membre")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Membre supprimé"})
}
