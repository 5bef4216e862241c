package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrNotFound     = errors.New("storage: object not found")
	ErrInvalidPath  = errors.New("storage: invalid object path")
	ErrInvalidToken = errors.New("storage: invalid or expired token")
)

// Object 可读取的存储对象
type Object struct {
	io.ReadSeekCloser
	Name    string
	Size    int64
	ModTime time.Time
}

// BlobStore 图库文件的存储后端，路径均为相对路径并使用 "/" 分隔
type BlobStore interface {
	Put(ctx context.Context, objectPath string, r io.Reader) (int64, error)
	Remove(ctx context.Context, objectPath string) error
	Open(ctx context.Context, objectPath string) (*Object, error)
	// List 返回全部对象的相对路径及修改时间
	List(ctx context.Context) (map[string]time.Time, error)
	// SignURL 生成有时效的访问链接
	SignURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error)
	// VerifyToken 校验访问令牌是否签给该路径且未过期
	VerifyToken(objectPath, token string) error
}
