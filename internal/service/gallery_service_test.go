package service

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"ufsbd-cms-server/internal/common"
	"ufsbd-cms-server/internal/config"
	"ufsbd-cms-server/internal/testutils"
)

// 测试内容：验证字节数格式化，最多两位小数并去掉末尾的 0。
func TestFormatSize(t *testing.T) {
	cases := map[int64]string{
		0:          "0 Bytes",
		512:        "512 Bytes",
		1024:       "1 KB",
		1536:       "1.5 KB",
		1126:       "1.1 KB",
		5242880:    "5 MB",
		1073741824: "1 GB",
	}
	for in, want := range cases {
		if got := FormatSize(in); got != want {
			t.Fatalf("FormatSize(%d) 期望 %q，实际为 %q", in, want, got)
		}
	}
}

// 测试内容：验证上传前检查的类型与大小规则，提示信息包含文件名。
func TestValidate(t *testing.T) {
	env := setupTestEnv(t)

	res := env.gallery.Validate("notes.txt", "text/plain", 10)
	if res.IsValid || res.Error != "notes.txt n'est pas une image valide." {
		t.Fatalf("非预期结果: %+v", res)
	}

	res = env.gallery.Validate("big.png", "image/png", 5242881)
	if res.IsValid || res.Error != "big.png est trop volumineux (max 5MB)." {
		t.Fatalf("非预期结果: %+v", res)
	}

	res = env.gallery.Validate("ok.png", "image/png", 5242880)
	if !res.IsValid || res.Error != "" {
		t.Fatalf("期望恰好 5MB 通过，实际为 %+v", res)
	}

	res = env.gallery.Validate("photo.jpg", "image/jpeg", 6*1024*1024)
	if res.IsValid || !strings.Contains(res.Error, "photo.jpg") {
		t.Fatalf("期望 6MB JPEG 被拒绝并提示文件名，实际为 %+v", res)
	}
}

// 测试内容：验证上传会写入文件与元数据，并返回签名链接。
func TestUpload_StoresBlobAndMetadata(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	img := createGalleryImage(t, env, "uploader-1")
	if !regexp.MustCompile(`^uploader-1/\d+-[0-9a-f]{12}\.png$`).MatchString(img.FilePath) {
		t.Fatalf("非预期路径: %q", img.FilePath)
	}
	if img.FileType != "image/png" || img.FileSize <= 0 || img.UploadedBy != "uploader-1" {
		t.Fatalf("非预期元数据: %+v", img)
	}
	if !strings.HasPrefix(img.URL, "/files/"+img.FilePath+"?token=") {
		t.Fatalf("非预期链接: %q", img.URL)
	}

	blobs, _ := env.blobs.List(ctx)
	if _, ok := blobs[img.FilePath]; !ok {
		t.Fatalf("期望文件已写入")
	}

	_, err := env.gallery.Upload(ctx, UploadInput{Reader: bytesReader([]byte("x")), FileName: "a.png", MimeType: "image/png"})
	mustCode(t, err, common.ErrorCodeUnauthorized)
}

// 测试内容：验证元数据写入失败时删除已上传的文件并返回后端错误。
func TestUpload_CompensatesOnMetadataFailure(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	svc := NewGalleryService(failingGalleryStore{GalleryStore: env.images}, env.blobs)

	_, err := svc.Upload(ctx, UploadInput{
		Reader:     bytesReader(testutils.MinimalPNG(t)),
		FileName:   "logo.png",
		MimeType:   "image/png",
		UploaderID: "uploader-1",
	})
	mustCode(t, err, common.ErrorCodeInternal)

	blobs, _ := env.blobs.List(ctx)
	if len(blobs) != 0 {
		t.Fatalf("期望文件已回滚，实际剩余 %v", blobs)
	}
}

// 测试内容：验证列表最新优先且每张图片都带签名链接。
func TestGalleryList_NewestFirstWithURLs(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	first := createGalleryImage(t, env, "u1")
	if err := env.db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("update created_at: %v", err)
	}
	second := createGalleryImage(t, env, "u1")

	images, err := env.gallery.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(images) != 2 || images[0].ID != second.ID {
		t.Fatalf("期望最新优先，实际为 %+v", images)
	}
	for _, img := range images {
		if !strings.Contains(img.URL, "token=") {
			t.Fatalf("期望每张图片都有签名链接: %+v", img)
		}
	}

	got, err := env.gallery.GetByID(ctx, first.ID)
	if err != nil || got.URL == "" {
		t.Fatalf("GetByID: %+v, %v", got, err)
	}
	_, err = env.gallery.GetByID(ctx, "missing")
	mustCode(t, err, common.ErrorCodeNotFound)
}

// 测试内容：验证删除先删元数据，文件删除失败不影响结果。
func TestGalleryDelete_ToleratesBlobFailure(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	img := createGalleryImage(t, env, "u1")

	flaky := &flakyBlobStore{BlobStore: env.blobs, failRemove: true}
	svc := NewGalleryService(env.images, flaky)
	if err := svc.Delete(ctx, img.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, err := svc.GetByID(ctx, img.ID)
	mustCode(t, err, common.ErrorCodeNotFound)

	blobs, _ := env.blobs.List(ctx)
	if _, ok := blobs[img.FilePath]; !ok {
		t.Fatalf("期望文件仍然存在，等待清理")
	}
	mustCode(t, svc.Delete(ctx, img.ID), common.ErrorCodeNotFound)
}

// 测试内容：验证清理任务只删除超过宽限期且没有元数据的文件。
func TestSweep_RemovesOrphans(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	kept := createGalleryImage(t, env, "u1")
	if _, err := env.blobs.Put(ctx, "u1/1-orphan.png", bytesReader([]byte("x"))); err != nil {
		t.Fatalf("Put: %v", err)
	}

	report, err := env.gallery.Sweep(ctx)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(report.Removed) != 0 {
		t.Fatalf("期望宽限期内的文件不被删除，实际为 %v", report.Removed)
	}

	env.gallery.now = func() time.Time { return time.Now().Add(time.Hour) }
	report, err = env.gallery.Sweep(ctx)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if report.Scanned != 2 || len(report.Removed) != 1 || report.Removed[0] != "u1/1-orphan.png" {
		t.Fatalf("非预期清理结果: %+v", report)
	}
	blobs, _ := env.blobs.List(ctx)
	if _, ok := blobs[kept.FilePath]; !ok || len(blobs) != 1 {
		t.Fatalf("期望仅保留有元数据的文件，实际为 %v", blobs)
	}
}

// 测试内容：验证开启链接缓存后重复读取不会重新签名，删除后缓存失效。
func TestSignedURLCache(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	withConfig(t, func(c *config.Config) { c.Gallery.URLCacheEnabled = true })

	counting := &flakyBlobStore{BlobStore: env.blobs}
	svc := NewGalleryService(env.images, counting)
	img := createGalleryImage(t, env, "u1")

	first, err := svc.GetByID(ctx, img.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	second, _ := svc.GetByID(ctx, img.ID)
	if first.URL != second.URL || counting.signCalls != 1 {
		t.Fatalf("期望命中缓存，签名次数 %d", counting.signCalls)
	}

	if err := svc.Delete(ctx, img.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := svc.urlCache.Get(ctx, img.ID); ok {
		t.Fatalf("期望删除后缓存失效")
	}
}
