package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// 测试内容：验证日志级别过滤与 JSON 输出字段。
func TestConfigure_LevelAndFields(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Level: "warn", Pretty: false, Output: &buf})
	defer Configure(Options{Level: "info", Pretty: true})

	Info().Msg("should be dropped")
	Warn().Str("image_id", "abc").Msg("kept")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Fatalf("期望 info 日志被过滤，实际输出: %s", out)
	}
	if !strings.Contains(out, `"image_id":"abc"`) || !strings.Contains(out, "kept") {
		t.Fatalf("期望 warn 日志包含字段，实际输出: %s", out)
	}
}

// 测试内容：验证未知级别回落到 info。
func TestParseLevel_DefaultsToInfo(t *testing.T) {
	if got := parseLevel("verbose"); got != zerolog.InfoLevel {
		t.Fatalf("期望 info，实际为 %v", got)
	}
	if got := parseLevel(" DEBUG "); got != zerolog.DebugLevel {
		t.Fatalf("期望 debug，实际为 %v", got)
	}
}
