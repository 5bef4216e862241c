package di

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"ufsbd-cms-server/internal/config"
	"ufsbd-cms-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// 测试内容：验证依赖装配能得到可用的路由与图库服务。
func TestInitializeApplication(t *testing.T) {
	config.SetForTest(config.Config{
		JWT:     config.JWTConfig{Secret: "di_test_secret", ExpirationHours: 1},
		Storage: config.StorageConfig{Path: t.TempDir(), URLPrefix: "/files/", SigningSecret: "di_signing", SignedURLTTLSeconds: 60},
	})
	gdb := testutils.SetupDB(t)

	app, err := InitializeApplication(gdb)
	if err != nil {
		t.Fatalf("InitializeApplication: %v", err)
	}
	if app.Router == nil || app.Gallery == nil {
		t.Fatalf("期望装配完整的 Application")
	}

	r := gin.New()
	app.Router.Init(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}

// 测试内容：验证缺少签名密钥时装配失败。
func TestInitializeApplication_MissingSigningSecret(t *testing.T) {
	config.SetForTest(config.Config{
		Storage: config.StorageConfig{Path: t.TempDir(), URLPrefix: "/files/"},
	})
	gdb := testutils.SetupDB(t)

	if _, err := InitializeApplication(gdb); err == nil {
		t.Fatalf("期望缺少签名密钥时返回错误")
	}
}
