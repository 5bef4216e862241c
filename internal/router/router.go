package router

import (
	"strings"
	"ufsbd-cms-server/internal/config"
	"ufsbd-cms-server/internal/handler"
	"ufsbd-cms-server/internal/middleware"
	"ufsbd-cms-server/internal/service"

	"github.com/gin-gonic/gin"
)

// Handlers 路由需要的全部处理器
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Post       *handler.PostHandler
	Gallery    *handler.GalleryHandler
	Organigram *handler.OrganigramHandler
	Admin      *handler.AdminHandler
	File       *handler.FileHandler
	System     *handler.SystemHandler
}

type Router struct {
	handlers *Handlers
	roles    middleware.RoleSource
}

func NewHandlers(
	auth *handler.AuthHandler,
	user *handler.UserHandler,
	post *handler.PostHandler,
	gallery *handler.GalleryHandler,
	organigram *handler.OrganigramHandler,
	admin *handler.AdminHandler,
	file *handler.FileHandler,
	system *handler.SystemHandler,
) *Handlers {
	return &Handlers{
		Auth:       auth,
		User:       user,
		Post:       post,
		Gallery:    gallery,
		Organigram: organigram,
		Admin:      admin,
		File:       file,
		System:     system,
	}
}

func NewRouter(handlers *Handlers, userService *service.UserService) *Router {
	return &Router{
		handlers: handlers,
		roles:    userService,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局中间件
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())

	registerFileRoutes(r, rt.handlers.File)

	// JSON 上限按路由组挂载，上传路由使用自己的上限
	api := r.Group("/api")
	jsonLimit := middleware.BodyLimitMiddleware(middleware.DefaultJSONBodyLimit)
	jsonAPI := api.Group("", jsonLimit)

	// 认证限流在注册与登录之间共用同一个实例
	authLimiter := middleware.RateLimitMiddleware(middleware.LimitAuth)

	registerPublicRoutes(jsonAPI, rt.handlers)
	registerAuthRoutes(jsonAPI, authLimiter, rt.handlers.Auth)

	// 受保护区域：先校验令牌，再从账号表加载角色
	protected := []gin.HandlerFunc{middleware.JWTAuth(), middleware.RoleLoader(rt.roles)}
	registerUserRoutes(jsonAPI, protected, rt.handlers.User)
	registerAdminRoutes(api, jsonLimit, protected, rt.handlers)
}

// fileURLPrefix 签名文件链接的路由前缀，统一为 "/xxx"
func fileURLPrefix() string {
	prefix := strings.TrimRight(config.Get().Storage.URLPrefix, "/")
	if prefix == "" || !strings.HasPrefix(prefix, "/") {
		return "/files"
	}
	return prefix
}
