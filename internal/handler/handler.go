package handler

import (
	"ufsbd-cms-server/internal/consts"
	"ufsbd-cms-server/internal/service"
	"ufsbd-cms-server/internal/storage"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

type UserHandler struct {
	userService *service.UserService
	postService *service.PostService
}

type PostHandler struct {
	postService *service.PostService
}

type GalleryHandler struct {
	galleryService *service.GalleryService
}

type OrganigramHandler struct {
	organigramService *service.OrganigramService
}

type AdminHandler struct {
	userService    *service.UserService
	postService    *service.PostService
	galleryService *service.GalleryService
}

type FileHandler struct {
	blobs storage.BlobStore
}

type SystemHandler struct{}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func NewUserHandler(userService *service.UserService, postService *service.PostService) *UserHandler {
	return &UserHandler{userService: userService, postService: postService}
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

func NewOrganigramHandler(organigramService *service.OrganigramService) *OrganigramHandler {
	return &OrganigramHandler{organigramService: organigramService}
}

func NewAdminHandler(userService *service.UserService, postService *service.PostService, galleryService *service.GalleryService) *AdminHandler {
	return &AdminHandler{userService: userService, postService: postService, galleryService: galleryService}
}

func NewFileHandler(blobs storage.BlobStore) *FileHandler {
	return &FileHandler{blobs: blobs}
}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(consts.ContextUserID)
}

func currentEmail(c *gin.Context) string {
	return c.GetString(consts.ContextEmail)
}
