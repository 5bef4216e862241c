package httpx

import (
	"net/http"
	"ufsbd-cms-server/internal/common"
	"ufsbd-cms-server/internal/logger"

	"github.com/gin-gonic/gin"
)

const msgInvalidParams = "Paramètres invalides"

var statusByCode = map[common.ErrorCode]int{
	common.ErrorCodeValidation:    http.StatusBadRequest,
	common.ErrorCodeUnauthorized:  http.StatusUnauthorized,
	common.ErrorCodeForbidden:     http.StatusForbidden,
	common.ErrorCodeNotFound:      http.StatusNotFound,
	common.ErrorCodeConflict:      http.StatusConflict,
	common.ErrorCodeProtectedRole: http.StatusConflict,
}

// WriteServiceError 业务错误按错误码输出 {"error","code"}；其它错误记录日志后以 fallbackMessage 返回 500
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := common.AsServiceError(err); ok {
		c.JSON(serviceErrorStatus(serviceErr.Code), gin.H{"error": serviceErr.Message, "code": serviceErr.Code})
		return
	}
	logger.Error().Err(err).Str("path", c.FullPath()).Msg("❌ 未分类的处理错误")
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage, "code": common.ErrorCodeInternal})
}

// WriteBindError 请求体无法解析或缺少必填字段
func WriteBindError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidParams, "code": common.ErrorCodeValidation})
}

func serviceErrorStatus(code common.ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
