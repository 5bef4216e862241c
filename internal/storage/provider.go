package storage

import "ufsbd-cms-server/internal/config"

// NewBlobStore 按当前配置创建存储后端
func NewBlobStore() (BlobStore, error) {
	cfg := config.Get().Storage
	return NewLocalStore(cfg.Path, cfg.URLPrefix, cfg.SigningSecret)
}
