package handler

import (
	"net/http"
	"ufsbd-cms-server/internal/consts"
	"ufsbd-cms-server/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"app":     consts.ApplicationName,
		"version": consts.ApplicationVersion,
	})
}

// Categories 博客分类及其显示名称
func (h *SystemHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"list": model.PostCategories})
}
