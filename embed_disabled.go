//go:build !embed

package main

import (
	"io/fs"

	"github.com/gin-gonic/gin"
)

// 不带 -tags embed 时只提供 API，前端由独立站点托管
const frontendEmbedded = false

func GetFrontendAssets() fs.FS {
	return nil
}

// setupFrontend 没有前端资源，NoRoute 对页面路径直接返回 404
func setupFrontend(_ *gin.Engine, _ fs.FS) []byte {
	return nil
}
