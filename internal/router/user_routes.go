package router

import (
	"ufsbd-cms-server/internal/handler"
	"ufsbd-cms-server/internal/middleware"
	"ufsbd-cms-server/internal/policy"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, protected []gin.HandlerFunc, h *handler.UserHandler) {
	userGroup := api.Group("/user")
	userGroup.Use(protected...)

	userGroup.GET("/profile", h.GetProfile)
	userGroup.GET("/capabilities", h.GetCapabilities)

	userGroup.POST("/posts", middleware.RequireCapability(policy.PostSubmit), h.SubmitPost)
	userGroup.GET("/posts", h.ListMyPosts)
}
