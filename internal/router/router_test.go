package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"ufsbd-cms-server/internal/config"
	"ufsbd-cms-server/internal/handler"
	"ufsbd-cms-server/internal/repository"
	"ufsbd-cms-server/internal/service"
	"ufsbd-cms-server/internal/storage"
	"ufsbd-cms-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.SetForTest(config.Config{
		JWT:     config.JWTConfig{Secret: "router_test_secret", ExpirationHours: 1},
		Storage: config.StorageConfig{URLPrefix: "/files/", SignedURLTTLSeconds: 3600},
		Gallery: config.GalleryConfig{MaxUploadBytes: 5 * 1024 * 1024},
	})
	os.Exit(m.Run())
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gdb := testutils.SetupDB(t)
	blobs, err := storage.NewLocalStore(t.TempDir(), "/files/", "router_signing_secret")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	users := repository.NewUserRepository(gdb)
	images := repository.NewGalleryRepository(gdb)
	userService := service.NewUserService(users)
	postService := service.NewPostService(repository.NewPostRepository(gdb), users)
	galleryService := service.NewGalleryService(images, blobs)
	organigramService := service.NewOrganigramService(repository.NewOrganigramRepository(gdb), images, galleryService)

	handlers := NewHandlers(
		handler.NewAuthHandler(service.NewAuthService(users)),
		handler.NewUserHandler(userService, postService),
		handler.NewPostHandler(postService),
		handler.NewGalleryHandler(galleryService),
		handler.NewOrganigramHandler(organigramService),
		handler.NewAdminHandler(userService, postService, galleryService),
		handler.NewFileHandler(blobs),
		handler.NewSystemHandler(),
	)

	r := gin.New()
	NewRouter(handlers, userService).Init(r)
	return r
}

// 测试内容：验证核心 API 路由被正确注册。
func TestInit_RegistersCoreRoutes(t *testing.T) {
	r := newTestEngine(t)

	wants := []string{
		"GET /api/ping",
		"GET /api/categories",
		"GET /api/posts",
		"GET /api/posts/:id",
		"GET /api/organigram",
		"GET /api/organigram/roles",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/user/profile",
		"GET /api/user/capabilities",
		"POST /api/user/posts",
		"GET /api/admin/stats",
		"PATCH /api/admin/posts/:id/status",
		"PATCH /api/admin/users/:id/role",
		"POST /api/admin/gallery",
		"POST /api/admin/gallery/validate",
		"PUT /api/admin/organigram/:id/image",
		"DELETE /api/admin/organigram/:id",
		"POST /api/admin/maintenance/sweep",
		"GET /files/*path",
	}

	have := make(map[string]bool)
	for _, route := range r.Routes() {
		have[route.Method+" "+route.Path] = true
	}
	for _, w := range wants {
		if !have[w] {
			t.Fatalf("缺少路由: %s", w)
		}
	}
}

// 测试内容：验证后台接口未登录时返回 401，公开接口可直接访问。
func TestInit_ProtectsAdminArea(t *testing.T) {
	r := newTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/gallery", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/organigram", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("期望设置安全响应头")
	}
}

// 测试内容：验证文件路由拒绝无签名的请求。
func TestInit_FileRouteRequiresToken(t *testing.T) {
	r := newTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files/u1/a.png", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}
}
