package router

import (
	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, h *Handlers) {
	api.GET("/ping", h.System.Ping)
	api.GET("/categories", h.System.Categories)

	api.GET("/posts", h.Post.ListPublished)
	api.GET("/posts/:id", h.Post.GetPublished)

	api.GET("/organigram", h.Organigram.ListPublic)
	api.GET("/organigram/roles", h.Organigram.Roles)
}
