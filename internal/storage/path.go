package storage

import (
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	segmentPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	extPattern     = regexp.MustCompile(`^[a-z0-9]{1,10}$`)
)

var commonImageExt = map[string]string{
	"image/jpeg":    "jpg",
	"image/png":     "png",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/avif":    "avif",
	"image/bmp":     "bmp",
	"image/svg+xml": "svg",
}

// BuildObjectPath 生成 {uploaderId}/{毫秒时间戳}-{随机串}.{扩展名}
func BuildObjectPath(uploaderID, fileName, mimeType string, now time.Time) (string, error) {
	if !segmentPattern.MatchString(uploaderID) {
		return "", ErrInvalidPath
	}
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s/%d-%s.%s", uploaderID, now.UnixMilli(), random, extensionFor(fileName, mimeType)), nil
}

// extensionFor 优先使用文件名扩展名，其次按 MIME 推断
func extensionFor(fileName, mimeType string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if extPattern.MatchString(ext) {
		return ext
	}
	if ext, ok := commonImageExt[strings.ToLower(mimeType)]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		ext = strings.TrimPrefix(exts[0], ".")
		if extPattern.MatchString(ext) {
			return ext
		}
	}
	return "bin"
}

// CleanObjectPath 规范化相对路径，拒绝绝对路径、越界与隐藏段
func CleanObjectPath(objectPath string) (string, error) {
	p := strings.TrimPrefix(strings.ReplaceAll(objectPath, "\\", "/"), "/")
	if p == "" {
		return "", ErrInvalidPath
	}
	cleaned := path.Clean(p)
	if cleaned == "." || cleaned != p {
		return "", ErrInvalidPath
	}
	for _, seg := range strings.Split(cleaned, "/") {
		if !segmentPattern.MatchString(seg) {
			return "", ErrInvalidPath
		}
	}
	return cleaned, nil
}

// secureJoin 把对象路径拼接到根目录下，并确保链路上没有符号链接
func secureJoin(root, objectPath string) (string, error) {
	cleaned, err := CleanObjectPath(objectPath)
	if err != nil {
		return "", err
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("路径解析失败: %w", err)
	}
	target := filepath.Join(rootAbs, filepath.FromSlash(cleaned))
	rel, err := filepath.Rel(rootAbs, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", ErrInvalidPath
	}

	for current := target; current != rootAbs; current = filepath.Dir(current) {
		info, statErr := os.Lstat(current)
		if statErr == nil && info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("检测到符号链接穿透风险: %s", current)
		}
		if statErr != nil && !os.IsNotExist(statErr) {
			return "", fmt.Errorf("检查路径失败: %w", statErr)
		}
		if filepath.Dir(current) == current {
			return "", ErrInvalidPath
		}
	}
	return target, nil
}
