package middleware

import (
	"net/http"
	"ufsbd-cms-server/internal/config"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultJSONBodyLimit 普通接口请求体上限
	DefaultJSONBodyLimit int64 = 2 * 1024 * 1024
	// multipartOverhead multipart 边界与表单字段的额外余量
	multipartOverhead int64 = 1024 * 1024
	defaultUploadLimit  int64 = 5 * 1024 * 1024
	// uploadCapFactor 图片上限的倍数内仍交给业务校验，返回带文件名的提示
	uploadCapFactor int64 = 2
)

// BodyLimitMiddleware 限制请求体大小
func BodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Requête trop volumineuse"})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func uploadBodyCap(limit int64) int64 {
	return limit*uploadCapFactor + multipartOverhead
}

// UploadBodyLimitMiddleware 上传接口单独的请求体上限，不能挂在 JSON 上限之下
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := config.Get().Gallery.MaxUploadBytes
		if limit <= 0 {
			limit = defaultUploadLimit
		}
		maxBytes := uploadBodyCap(limit)

		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Fichier trop volumineux"})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
