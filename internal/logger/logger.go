package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// 全局 zerolog 日志封装

var defaultLogger zerolog.Logger

type Options struct {
	// Level: debug, info, warn, error
	Level string
	// Pretty 启用人类可读的控制台输出
	Pretty bool
	// Output 默认 os.Stdout
	Output io.Writer
}

// Configure 按配置重建全局日志
func Configure(opts Options) {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLevel(opts.Level))

	var writer io.Writer = opts.Output
	if opts.Pretty {
		writer = zerolog.ConsoleWriter{Out: opts.Output, TimeFormat: "2006-01-02 15:04:05"}
	}

	defaultLogger = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = defaultLogger
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

func Info() *zerolog.Event {
	return defaultLogger.Info()
}

func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// Fatal 记录后退出进程
func Fatal() *zerolog.Event {
	return defaultLogger.Fatal()
}

// With 返回带固定字段的子日志
func With(key string, value string) zerolog.Logger {
	return defaultLogger.With().Str(key, value).Logger()
}

func init() {
	Configure(Options{Level: "info", Pretty: true})
}
