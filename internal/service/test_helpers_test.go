package service

import (
	"bytes"
	"context"
	"io"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"ufsbd-cms-server/internal/common"
	"ufsbd-cms-server/internal/config"
	"ufsbd-cms-server/internal/model"
	"ufsbd-cms-server/internal/repository"
	"ufsbd-cms-server/internal/storage"
	"ufsbd-cms-server/internal/testutils"

	"gorm.io/gorm"
)

type testEnv struct {
	db         *gorm.DB
	blobs      *storage.LocalStore
	users      repository.UserStore
	posts      repository.PostStore
	images     repository.GalleryStore
	members    repository.OrganigramStore
	auth       *AuthService
	user       *UserService
	post       *PostService
	gallery    *GalleryService
	organigram *OrganigramService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb := testutils.SetupDB(t)
	blobs, err := storage.NewLocalStore(t.TempDir(), "/files/", "test_signing_secret")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	env := &testEnv{
		db:      gdb,
		blobs:   blobs,
		users:   repository.NewUserRepository(gdb),
		posts:   repository.NewPostRepository(gdb),
		images:  repository.NewGalleryRepository(gdb),
		members: repository.NewOrganigramRepository(gdb),
	}
	env.auth = NewAuthService(env.users)
	env.user = NewUserService(env.users)
	env.post = NewPostService(env.posts, env.users)
	env.gallery = NewGalleryService(env.images, blobs)
	env.organigram = NewOrganigramService(env.members, env.images, env.gallery)
	return env
}

// withConfig 临时修改配置，测试结束后恢复
func withConfig(t *testing.T, mutate func(*config.Config)) {
	t.Helper()
	prev := config.Get()
	next := prev
	mutate(&next)
	config.SetForTest(next)
	t.Cleanup(func() { config.SetForTest(prev) })
}

func mustCode(t *testing.T, err error, code common.ErrorCode) {
	t.Helper()
	if !common.HasCode(err, code) {
		t.Fatalf("期望错误码 %s，实际为 %v", code, err)
	}
}

func createUser(t *testing.T, env *testEnv, email string, role model.Role) *model.User {
	t.Helper()
	hashed, err := hashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &model.User{Email: email, Password: hashed, Role: role}
	if err := env.db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createGalleryImage(t *testing.T, env *testEnv, uploaderID string) *model.GalleryImage {
	t.Helper()
	img, err := env.gallery.Upload(context.Background(), UploadInput{
		Reader:     bytesReader(testutils.MinimalPNG(t)),
		FileName:   "logo.png",
		MimeType:   "image/png",
		UploaderID: uploaderID,
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	return img
}

// failingGalleryStore Create 总是失败，其余行为委托给真实仓库
type failingGalleryStore struct {
	repository.GalleryStore
}

func (f failingGalleryStore) Create(context.Context, *model.GalleryImage) error {
	return errors.New("insert failed")
}

// flakyBlobStore Remove 总是失败，并统计签名次数
type flakyBlobStore struct {
	storage.BlobStore
	failRemove bool
	signCalls  int64
}

func (f *flakyBlobStore) Remove(ctx context.Context, objectPath string) error {
	if f.failRemove {
		return errors.New("remove failed")
	}
	return f.BlobStore.Remove(ctx, objectPath)
}

func (f *flakyBlobStore) SignURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error) {
	atomic.AddInt64(&f.signCalls, 1)
	return f.BlobStore.SignURL(ctx, objectPath, ttl)
}

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}
