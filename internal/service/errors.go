package service

import (
	"errors"
	"ufsbd-cms-server/internal/common"
	"ufsbd-cms-server/internal/logger"

	"gorm.io/gorm"
)

const msgBackendFailure = "Une erreur interne est survenue, veuillez réessayer."

// backendError 记录底层错误并转换为对外的 internal 错误
func backendError(err error, op string) error {
	logger.Error().Err(err).Str("op", op).Msg("❌ 后端操作失败")
	return common.NewInternalError(msgBackendFailure)
}

// lookupError 记录不存在时返回 NotFound，其余视为后端错误
func lookupError(err error, op, notFoundMessage string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NewNotFoundError(notFoundMessage)
	}
	return backendError(err, op)
}
