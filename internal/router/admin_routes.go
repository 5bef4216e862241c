package router

import (
	"ufsbd-cms-server/internal/middleware"
	"ufsbd-cms-server/internal/policy"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, jsonLimit gin.HandlerFunc, protected []gin.HandlerFunc, h *Handlers) {
	adminRoot := api.Group("/admin")
	adminRoot.Use(protected...)

	// 上传路由不经过 JSON 上限，单独放宽请求体并限流
	uploadLimiter := middleware.RateLimitMiddleware(middleware.LimitUpload)
	adminRoot.POST("/gallery",
		middleware.RequireCapability(policy.GalleryManage),
		middleware.UploadBodyLimitMiddleware(),
		uploadLimiter,
		h.Gallery.Upload,
	)

	adminGroup := adminRoot.Group("", jsonLimit)

	adminGroup.GET("/stats", middleware.RequireCapability(policy.AdminDashboard), h.Admin.Stats)

	posts := adminGroup.Group("/posts", middleware.RequireCapability(policy.PostModerate))
	posts.GET("/pending", h.Post.ListPending)
	posts.GET("/approved", h.Post.ListApproved)
	posts.PATCH("/:id/status", h.Post.UpdateStatus)
	posts.DELETE("/:id", h.Post.Delete)

	users := adminGroup.Group("/users", middleware.RequireCapability(policy.UserManage))
	users.GET("", h.Admin.ListUsers)
	users.PATCH("/:id/role", h.Admin.UpdateUserRole)

	gallery := adminGroup.Group("/gallery", middleware.RequireCapability(policy.GalleryManage))
	gallery.GET("", h.Gallery.List)
	gallery.GET("/:id", h.Gallery.Get)
	gallery.POST("/validate", h.Gallery.Validate)
	gallery.DELETE("/:id", h.Gallery.Delete)

	organigram := adminGroup.Group("/organigram", middleware.RequireCapability(policy.OrganigramManage))
	organigram.GET("", h.Organigram.ListAll)
	organigram.GET("/:id", h.Organigram.Get)
	organigram.POST("", h.Organigram.Create)
	organigram.PATCH("/:id", h.Organigram.Update)
	organigram.PUT("/:id/image", h.Organigram.UpdateImage)
	organigram.DELETE("/:id", h.Organigram.Delete)

	adminGroup.POST("/maintenance/sweep", middleware.RequireCapability(policy.MaintenanceRun), h.Admin.Sweep)
}
