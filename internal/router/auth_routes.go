package router

import (
	"ufsbd-cms-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.AuthHandler) {
	authGroup := api.Group("/auth")
	authGroup.POST("/register", authLimiter, h.Register)
	authGroup.POST("/login", authLimiter, h.Login)
}
