package handler

import (
	"net/http"
	"runtime"
	"ufsbd-cms-server/internal/common/httpx"
	"ufsbd-cms-server/internal/dto"
	"ufsbd-cms-server/internal/model"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Stats 文章各状态数量、图库数量与运行环境
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	resp := dto.ServerStatsResponse{
		SystemInfo: dto.SystemInfoResponse{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}

	var g errgroup.Group
	g.Go(func() error {
		stats, err := h.postService.Stats(ctx)
		resp.PostStats = stats
		return err
	})
	g.Go(func() error {
		n, err := h.galleryService.Count(ctx)
		resp.ImageCount = n
		return err
	})
	if err := g.Wait(); err != nil {
		httpx.WriteServiceError(c, err, "Impossible de charger les statistiques")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de charger les utilisateurs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": users})
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c)
		return
	}

	user, err := h.userService.UpdateRole(c.Request.Context(), currentUserID(c), c.Param("id"), model.Role(req.Role))
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de modifier le rôle")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rôle mis à jour", "user": user})
}

// Sweep 手动触发孤儿文件清理
func (h *AdminHandler) Sweep(c *gin.Context) {
	report, err := h.galleryService.Sweep(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Échec du nettoyage")
		return
	}
	c.JSON(http.StatusOK, report)
}
