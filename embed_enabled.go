//go:build embed

package main

import (
	"embed"
	"io/fs"
	"net/http"
	"ufsbd-cms-server/internal/logger"
	"ufsbd-cms-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

//go:embed all:frontend
var embedFS embed.FS

const frontendEmbedded = true

// GetFrontendAssets 前端构建产物位于 frontend/ 子目录
func GetFrontendAssets() fs.FS {
	distFS, err := fs.Sub(embedFS, "frontend")
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ 无法打开嵌入的 frontend 目录")
	}
	return distFS
}

// setupFrontend 挂载带哈希的静态资源并返回 index.html 供 SPA 回退使用
func setupFrontend(r *gin.Engine, distFS fs.FS) []byte {
	if assetsFS, err := fs.Sub(distFS, "assets"); err == nil {
		r.Group("/assets", middleware.CacheControl("public, max-age=31536000, immutable")).
			StaticFS("", http.FS(assetsFS))
	} else {
		logger.Warn().Err(err).Msg("⚠️ 无法挂载 frontend/assets")
	}

	indexData, err := fs.ReadFile(distFS, "index.html")
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ 无法读取嵌入的 frontend/index.html")
	}
	return indexData
}
