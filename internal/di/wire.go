//go:build wireinject
// +build wireinject

package di

import (
	"ufsbd-cms-server/internal/handler"
	"ufsbd-cms-server/internal/repository"
	"ufsbd-cms-server/internal/router"
	"ufsbd-cms-server/internal/service"
	"ufsbd-cms-server/internal/storage"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB) (*Application, error) {
	wire.Build(
		storage.NewBlobStore,
		repository.NewUserRepository,
		repository.NewPostRepository,
		repository.NewGalleryRepository,
		repository.NewOrganigramRepository,
		service.NewAuthService,
		service.NewUserService,
		service.NewPostService,
		service.NewGalleryService,
		service.NewOrganigramService,
		handler.NewAuthHandler,
		handler.NewUserHandler,
		handler.NewPostHandler,
		handler.NewGalleryHandler,
		handler.NewOrganigramHandler,
		handler.NewAdminHandler,
		handler.NewFileHandler,
		handler.NewSystemHandler,
		router.NewHandlers,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
