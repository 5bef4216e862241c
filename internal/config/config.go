package config

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"ufsbd-cms-server/internal/logger"

	"github.com/spf13/viper"
)

// 应用配置：文件 + 环境变量，运行期只读快照

const (
	// DefaultJWTSecret 仅用于开发模式的占位密钥
	DefaultJWTSecret = "ufsbd_dev_secret"
	// DefaultSigningSecret 仅用于开发模式的文件签名占位密钥
	DefaultSigningSecret = "ufsbd_dev_signing_secret"
)

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Gallery   GalleryConfig   `mapstructure:"gallery"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port           string `mapstructure:"port"`
	Mode           string `mapstructure:"mode"`
	TrustedProxies string `mapstructure:"trusted_proxies"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      bool   `mapstructure:"ssl"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

// StorageConfig 图库文件的本地存储
type StorageConfig struct {
	Path                string `mapstructure:"path"`
	URLPrefix           string `mapstructure:"url_prefix"`
	SigningSecret       string `mapstructure:"signing_secret"`
	SignedURLTTLSeconds int    `mapstructure:"signed_url_ttl_seconds"`
}

type GalleryConfig struct {
	MaxUploadBytes       int64 `mapstructure:"max_upload_bytes"`
	URLCacheEnabled      bool  `mapstructure:"url_cache_enabled"`
	SweepIntervalMinutes int   `mapstructure:"sweep_interval_minutes"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type RateLimitConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	AuthRPS     float64 `mapstructure:"auth_rps"`
	AuthBurst   int     `mapstructure:"auth_burst"`
	UploadRPS   float64 `mapstructure:"upload_rps"`
	UploadBurst int     `mapstructure:"upload_burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Get 获取当前配置的快照（无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceSecretSafety()
	logger.Info().Str("dir", configDir).Msg("✅ 配置加载成功")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			logger.Warn().Msg("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			logger.Fatal().Err(err).Msg("❌ 读取配置文件失败")
		}
	}

	// 环境变量覆盖：storage.path 对应 UFSBD_STORAGE_PATH
	v.SetEnvPrefix("UFSBD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.trusted_proxies", "")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/ufsbd.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "ufsbd")
	v.SetDefault("database.password", "ufsbd")
	v.SetDefault("database.name", "ufsbd")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("storage.path", "uploads/gallery")
	v.SetDefault("storage.url_prefix", "/files/")
	v.SetDefault("storage.signing_secret", "")
	v.SetDefault("storage.signed_url_ttl_seconds", 3600)
	v.SetDefault("gallery.max_upload_bytes", 5*1024*1024)
	v.SetDefault("gallery.url_cache_enabled", false)
	v.SetDefault("gallery.sweep_interval_minutes", 60)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "ufsbd")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.auth_rps", 0.5)
	v.SetDefault("rate_limit.auth_burst", 5)
	v.SetDefault("rate_limit.upload_rps", 1.0)
	v.SetDefault("rate_limit.upload_burst", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		logger.Error().Err(err).Msg("❌ 配置解析失败")
		return
	}

	if tempConfig.Server.Mode != "release" {
		if tempConfig.JWT.Secret == "" {
			logger.Warn().Msg("⚠️ [开发模式警告] 未设置 JWT Secret，将使用默认不安全密钥进行开发")
			tempConfig.JWT.Secret = DefaultJWTSecret
		}
		if tempConfig.Storage.SigningSecret == "" {
			tempConfig.Storage.SigningSecret = DefaultSigningSecret
		}
	}
	if tempConfig.Storage.SignedURLTTLSeconds <= 0 {
		tempConfig.Storage.SignedURLTTLSeconds = 3600
	}

	appConfig.Store(&tempConfig)
	logger.Debug().Msg("配置已更新")
}

func enforceSecretSafety() {
	curr := Get()
	if curr.Server.Mode != "release" {
		return
	}
	if curr.JWT.Secret == "" || curr.JWT.Secret == DefaultJWTSecret {
		logger.Fatal().Msg("❌ [安全严重错误] 生产模式(release)下必须设置安全的 JWT Secret！请设置环境变量 UFSBD_JWT_SECRET 或在配置文件中指定 jwt.secret")
	}
	if curr.Storage.SigningSecret == "" || curr.Storage.SigningSecret == DefaultSigningSecret {
		logger.Fatal().Msg("❌ [安全严重错误] 生产模式(release)下必须设置 storage.signing_secret (UFSBD_STORAGE_SIGNING_SECRET)")
	}
}

// SetForTest 直接替换配置快照，仅供测试使用
func SetForTest(c Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig.Store(&c)
}
