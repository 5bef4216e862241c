package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"ufsbd-cms-server/internal/common"
	"ufsbd-cms-server/internal/config"
	"ufsbd-cms-server/internal/logger"
	"ufsbd-cms-server/internal/model"
	repo "ufsbd-cms-server/internal/repository"
	"ufsbd-cms-server/internal/storage"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxUploadBytes 图库单张图片上限 5MB
	DefaultMaxUploadBytes int64 = 5 * 1024 * 1024
	msgImageNotFound            = "Image introuvable"
	// signedURLCacheMargin 缓存比签名链接早过期，避免返回即将失效的链接
	signedURLCacheMargin = 5 * time.Minute
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

type GalleryService struct {
	galleryStore repo.GalleryStore
	blobs        storage.BlobStore
	urlCache     *ttlCache
	now          func() time.Time
}

func NewGalleryService(galleryStore repo.GalleryStore, blobs storage.BlobStore) *GalleryService {
	return &GalleryService{
		galleryStore: galleryStore,
		blobs:        blobs,
		urlCache:     newTTLCache("gallery_url"),
		now:          time.Now,
	}
}

type ValidationResult struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

type UploadInput struct {
	Reader     io.Reader
	FileName   string
	MimeType   string
	Size       int64
	UploaderID string
}

func maxUploadBytes() int64 {
	if limit := config.Get().Gallery.MaxUploadBytes; limit > 0 {
		return limit
	}
	return DefaultMaxUploadBytes
}

func signedURLTTL() time.Duration {
	if secs := config.Get().Storage.SignedURLTTLSeconds; secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return time.Hour
}

// FormatSize 以 1024 为进制格式化字节数，最多两位小数且去掉末尾的 0
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	value := float64(bytes)
	i := 0
	for value >= 1024 && i < len(sizeUnits)-1 {
		value /= 1024
		i++
	}
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[i]
}

// Validate 上传前检查：MIME 必须为 image/*，大小不超过上限
func (s *GalleryService) Validate(name, mimeType string, size int64) ValidationResult {
	if !strings.HasPrefix(mimeType, "image/") {
		return ValidationResult{IsValid: false, Error: fmt.Sprintf("%s n'est pas une image valide.", name)}
	}
	limit := maxUploadBytes()
	if size > limit {
		return ValidationResult{
			IsValid: false,
			Error:   fmt.Sprintf("%s est trop volumineux (max %s).", name, strings.ReplaceAll(FormatSize(limit), " ", "")),
		}
	}
	return ValidationResult{IsValid: true}
}

// Upload 先写文件再写元数据；元数据失败时删除已写入的文件。调用方负责事先 Validate。
func (s *GalleryService) Upload(ctx context.Context, input UploadInput) (*model.GalleryImage, error) {
	if input.UploaderID == "" {
		return nil, common.NewUnauthorizedError("Authentification requise")
	}
	if input.Reader == nil || strings.TrimSpace(input.FileName) == "" {
		return nil, common.NewValidationError("Fichier manquant")
	}

	objectPath, err := storage.BuildObjectPath(input.UploaderID, input.FileName, input.MimeType, s.now())
	if err != nil {
		return nil, common.NewValidationError("Chemin de fichier invalide")
	}

	written, err := s.blobs.Put(ctx, objectPath, input.Reader)
	if err != nil {
		return nil, backendError(err, "gallery.upload.put")
	}

	size := input.Size
	if size <= 0 {
		size = written
	}
	image := &model.GalleryImage{
		Name:       input.FileName,
		FilePath:   objectPath,
		FileSize:   size,
		FileType:   input.MimeType,
		UploadedBy: input.UploaderID,
	}
	if err := s.galleryStore.Create(ctx, image); err != nil {
		if rmErr := s.blobs.Remove(context.WithoutCancel(ctx), objectPath); rmErr != nil {
			logger.Warn().Err(rmErr).Str("path", objectPath).Msg("⚠️ 回滚上传文件失败，等待清理任务处理")
		}
		return nil, backendError(err, "gallery.upload.metadata")
	}

	image.URL = s.signedURL(ctx, image)
	logger.Info().Str("image_id", image.ID).Str("path", objectPath).Msg("🖼️ 图片已上传")
	return image, nil
}

// List 最新优先，每张图片附带新的签名链接
func (s *GalleryService) List(ctx context.Context) ([]model.GalleryImage, error) {
	images, err := s.galleryStore.List(ctx)
	if err != nil {
		return nil, backendError(err, "gallery.list")
	}
	if err := s.signAll(ctx, images); err != nil {
		return nil, err
	}
	return images, nil
}

func (s *GalleryService) GetByID(ctx context.Context, id string) (*model.GalleryImage, error) {
	image, err := s.galleryStore.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "gallery.get", msgImageNotFound)
	}
	image.URL = s.signedURL(ctx, image)
	return image, nil
}

// Count 图库图片总数
func (s *GalleryService) Count(ctx context.Context) (int64, error) {
	n, err := s.galleryStore.CountAll(ctx)
	if err != nil {
		return 0, backendError(err, "gallery.count")
	}
	return n, nil
}

// Delete 先删元数据再删文件；文件删除失败只记录日志，由清理任务兜底
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	image, err := s.galleryStore.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, "gallery.delete.lookup", msgImageNotFound)
	}
	if err := s.galleryStore.DeleteByID(ctx, id); err != nil {
		return lookupError(err, "gallery.delete", msgImageNotFound)
	}
	s.urlCache.Delete(ctx, id)

	if err := s.blobs.Remove(context.WithoutCancel(ctx), image.FilePath); err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Warn().Err(err).Str("image_id", id).Str("path", image.FilePath).Msg("⚠️ 图片文件删除失败，已留待清理任务处理")
	}
	return nil
}

// signAll 并发签名并等待全部完成；单张失败时该图片链接为空
func (s *GalleryService) signAll(ctx context.Context, images []model.GalleryImage) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range images {
		img := &images[i]
		g.Go(func() error {
			img.URL = s.signedURL(gctx, img)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return backendError(err, "gallery.sign")
	}
	return nil
}

func (s *GalleryService) signedURL(ctx context.Context, image *model.GalleryImage) string {
	cacheEnabled := config.Get().Gallery.URLCacheEnabled
	if cacheEnabled {
		if cached, ok := s.urlCache.Get(ctx, image.ID); ok {
			return cached
		}
	}

	ttl := signedURLTTL()
	url, err := s.blobs.SignURL(ctx, image.FilePath, ttl)
	if err != nil {
		logger.Warn().Err(err).Str("image_id", image.ID).Msg("⚠️ 生成签名链接失败")
		return ""
	}
	if cacheEnabled {
		s.urlCache.Set(ctx, image.ID, url, ttl-signedURLCacheMargin)
	}
	return url
}
