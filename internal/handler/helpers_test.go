package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"ufsbd-cms-server/internal/consts"
	"ufsbd-cms-server/internal/model"
	"ufsbd-cms-server/internal/repository"
	"ufsbd-cms-server/internal/service"
	"ufsbd-cms-server/internal/storage"
	"ufsbd-cms-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type handlerEnv struct {
	db         *gorm.DB
	blobs      *storage.LocalStore
	user       *service.UserService
	post       *service.PostService
	gallery    *service.GalleryService
	organigram *service.OrganigramService
}

func setupHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()

	gdb := testutils.SetupDB(t)
	blobs, err := storage.NewLocalStore(t.TempDir(), "/files/", "handler_signing_secret")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	users := repository.NewUserRepository(gdb)
	images := repository.NewGalleryRepository(gdb)
	env := &handlerEnv{db: gdb, blobs: blobs}
	env.user = service.NewUserService(users)
	env.post = service.NewPostService(repository.NewPostRepository(gdb), users)
	env.gallery = service.NewGalleryService(images, blobs)
	env.organigram = service.NewOrganigramService(repository.NewOrganigramRepository(gdb), images, env.gallery)
	return env
}

// asUser 模拟认证中间件写入的身份
func asUser(id string, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(consts.ContextUserID, id)
		c.Set(consts.ContextEmail, id+"@ufsbd.fr")
		c.Set(consts.ContextRole, role)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// multipartFile 构造带指定 Content-Type 的 file 字段
func multipartFile(t *testing.T, fileName, mimeType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("解析响应失败: %v, body=%s", err, w.Body.String())
	}
	return out
}

func countRows(t *testing.T, gdb *gorm.DB, value any) int64 {
	t.Helper()
	var n int64
	if err := gdb.Model(value).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
