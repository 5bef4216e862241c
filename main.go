package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"
	"ufsbd-cms-server/internal/config"
	"ufsbd-cms-server/internal/consts"
	"ufsbd-cms-server/internal/db"
	"ufsbd-cms-server/internal/di"
	"ufsbd-cms-server/internal/logger"
	"ufsbd-cms-server/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	configDir := flag.String("config", "config", "配置文件目录")
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	flag.Parse()

	config.InitConfig(*configDir)
	cfg := config.Get()
	logger.Configure(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	storagePath := ensureStorageDirectory(cfg.Storage.Path)

	db.InitDB()

	app, err := di.InitializeApplication(db.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ 依赖装配失败")
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	applyTrustedProxies(r, cfg.Server.TrustedProxies)
	app.Router.Init(r)

	distFS := GetFrontendAssets()
	indexData := setupFrontend(r, distFS)
	r.NoRoute(getNoRouteHandler(distFS, indexData))
	logger.Debug().Bool("frontend_embedded", frontendEmbedded).Msg("前端资源挂载完成")

	// 导出模式
	if *exportRoutes {
		exportAPI(r)
		return // 导出后直接退出程序，不启动 Web 服务
	}

	printWelcomeMessage(distFS)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	if minutes := cfg.Gallery.SweepIntervalMinutes; minutes > 0 {
		go app.Gallery.RunSweeper(sweepCtx, time.Duration(minutes)*time.Minute)
		logger.Info().Int("interval_minutes", minutes).Str("path", storagePath).Msg("🧹 图库清理任务已启动")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("🚀 服务启动成功")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("❌ 服务启动失败")
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("🛑 正在关闭服务...")
	stopSweeper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("❌ 服务强制关闭")
	}
	if err := service.CloseRedisClient(); err != nil {
		logger.Warn().Err(err).Msg("⚠️ 关闭 Redis 连接失败")
	}
	logger.Info().Msg("✅ 服务已退出")
}

// ensureStorageDirectory 校验并创建图库存储目录
func ensureStorageDirectory(path string) string {
	checkSecurePath(path)
	if err := os.MkdirAll(path, 0755); err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("❌ 无法创建图库存储目录")
	}
	return path
}

// splitTrustedProxyList 支持逗号、分号与空白分隔
func splitTrustedProxyList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
}

// applyTrustedProxies 空值或非法值都视为不信任任何代理
func applyTrustedProxies(r *gin.Engine, raw string) {
	proxies := splitTrustedProxyList(raw)
	if len(proxies) == 0 {
		_ = r.SetTrustedProxies(nil)
		return
	}
	for _, p := range proxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				logger.Warn().Str("proxy", p).Msg("⚠️ trusted_proxies 配置无效，已禁用代理信任")
				_ = r.SetTrustedProxies(nil)
				return
			}
		}
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		logger.Warn().Err(err).Msg("⚠️ 设置可信代理失败，已禁用代理信任")
		_ = r.SetTrustedProxies(nil)
	}
}

func getNoRouteHandler(distFS fs.FS, indexData []byte) gin.HandlerFunc {
	filesPrefix := strings.TrimRight(config.Get().Storage.URLPrefix, "/") + "/"
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API introuvable"})
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, filesPrefix) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fichier introuvable"})
			return
		}
		if distFS == nil || indexData == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		// 尝试直接服务根目录下的静态文件 (如 favicon.ico, manifest.json)
		path := strings.TrimPrefix(c.Request.URL.Path, "/")
		if path != "" {
			if f, err := distFS.Open(path); err == nil {
				stat, statErr := f.Stat()
				_ = f.Close()
				if statErr == nil && !stat.IsDir() {
					c.FileFromFS(path, http.FS(distFS))
					return
				}
			}
		}

		// SPA 回退：服务 index.html 内容
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexData)
	}
}

func printWelcomeMessage(distFS fs.FS) {
	frontendVersion := "未嵌入"
	if distFS != nil {
		frontendVersion = "未知版本"
		if vData, err := fs.ReadFile(distFS, "version"); err == nil {
			frontendVersion = strings.TrimSpace(string(vData))
		}
	}

	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🦷  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  后端版本 : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   💻  前端版本 : %s\n", frontendVersion)
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Printf(" │   🗄️   数据库   : %s\n", config.Get().Database.Type)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine) {
	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	routes := r.Routes()
	exportList := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		logger.Error().Err(err).Msg("❌ 路由序列化失败")
		return
	}
	if err := os.WriteFile("routes.json", file, 0644); err != nil {
		logger.Error().Err(err).Msg("❌ 写入 routes.json 失败")
		return
	}
	logger.Info().Int("count", len(exportList)).Msg("✅ 路由已成功导出到 routes.json")
}

func checkSecurePath(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ 路径解析失败")
	}

	cwd, err := os.Getwd()
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ 无法获取当前工作目录")
	}

	// 检查是否直接指向项目根目录
	if absPath == cwd {
		logger.Fatal().Str("path", path).Msg("❌ 安全配置错误: 图库目录不能设置为项目根目录！这会导致源代码泄露。")
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err == nil && !strings.HasPrefix(rel, "..") {
		relSlash := filepath.ToSlash(rel)

		// 只有位于这些目录下的路径才被允许作为图库目录
		allowedDirs := []string{"uploads", "public", "assets", "static", "tmp", "data"}

		firstComponent := strings.Split(relSlash, "/")[0]
		for _, allowed := range allowedDirs {
			if strings.EqualFold(firstComponent, allowed) {
				return
			}
		}
		logger.Fatal().Str("path", path).Str("resolved", relSlash).Strs("allowed", allowedDirs).
			Msg("❌ 安全配置错误: 图库目录必须位于项目根目录下的安全子目录中")
	}
}
