package di

import (
	"ufsbd-cms-server/internal/router"
	"ufsbd-cms-server/internal/service"
)

type Application struct {
	Router *router.Router
	// Gallery 供后台清理任务使用
	Gallery *service.GalleryService
}

func NewApplication(r *router.Router, gallery *service.GalleryService) *Application {
	return &Application{
		Router:  r,
		Gallery: gallery,
	}
}
