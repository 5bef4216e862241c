package router

import (
	"ufsbd-cms-server/internal/handler"
	"ufsbd-cms-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// registerFileRoutes 签名链接本身有时效，浏览器缓存不超过链接有效期
func registerFileRoutes(r *gin.Engine, h *handler.FileHandler) {
	files := r.Group(fileURLPrefix(), middleware.CacheControl("private, max-age=300"))
	files.GET("/*path", h.Serve)
	files.HEAD("/*path", h.Serve)
}
