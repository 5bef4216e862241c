package testutils

import (
	"os"

	"ufsbd-cms-server/internal/config"
)

// baseTestEnv 各包测试共用的环境变量：开发模式、关闭 Redis、降低日志噪音
var baseTestEnv = map[string]string{
	"UFSBD_SERVER_MODE":   "debug",
	"UFSBD_JWT_SECRET":    "test_secret",
	"UFSBD_REDIS_ENABLED": "false",
	"UFSBD_LOG_LEVEL":     "error",
}

type savedVar struct {
	value string
	had   bool
}

// EnvSnapshot 记录被覆盖前的环境变量，Restore 时逐个还原
type EnvSnapshot map[string]savedVar

// ApplyEnv 写入环境变量并返回原值快照
func ApplyEnv(vars map[string]string) EnvSnapshot {
	snap := make(EnvSnapshot, len(vars))
	for key, value := range vars {
		prev, had := os.LookupEnv(key)
		snap[key] = savedVar{value: prev, had: had}
		_ = os.Setenv(key, value)
	}
	return snap
}

func (s EnvSnapshot) Restore() {
	for key, saved := range s {
		if saved.had {
			_ = os.Setenv(key, saved.value)
			continue
		}
		_ = os.Unsetenv(key)
	}
}

// RunWithConfig 供 TestMain 使用：临时配置目录 + 基础环境变量 + overrides，执行 m.Run 后清理
func RunWithConfig(run func() int, dirPattern string, overrides map[string]string) int {
	tmpDir, err := os.MkdirTemp("", dirPattern)
	if err != nil {
		panic(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	vars := make(map[string]string, len(baseTestEnv)+len(overrides))
	for k, v := range baseTestEnv {
		vars[k] = v
	}
	for k, v := range overrides {
		vars[k] = v
	}
	snap := ApplyEnv(vars)
	defer snap.Restore()

	config.InitConfig(tmpDir)
	return run()
}
