package handler

import (
	"errors"
	"net/http"
	"strings"
	"ufsbd-cms-server/internal/logger"
	"ufsbd-cms-server/internal/storage"

	"github.com/gin-gonic/gin"
)

// Serve 校验签名后输出图库文件
func (h *FileHandler) Serve(c *gin.Context) {
	objectPath := strings.TrimPrefix(c.Param("path"), "/")
	if err := h.blobs.VerifyToken(objectPath, c.Query("token")); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Lien expiré ou invalide"})
		return
	}

	obj, err := h.blobs.Open(c.Request.Context(), objectPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidPath) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fichier introuvable"})
			return
		}
		logger.Error().Err(err).Str("path", objectPath).Msg("❌ 读取图库文件失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de lire le fichier"})
		return
	}
	defer func() { _ = obj.Close() }()

	// 上传内容可能是 SVG，禁止其中脚本执行
	c.Header("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; sandbox")
	http.ServeContent(c.Writer, c.Request, obj.Name, obj.ModTime, obj)
}
