package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const blobTokenIssuer = "ufsbd-blob"

type blobClaims struct {
	Path string `json:"p"`
	jwt.RegisteredClaims
}

// LocalStore 本地文件系统存储，访问链接为 {urlPrefix}{path}?token=...
type LocalStore struct {
	root      string
	urlPrefix string
	secret    []byte
	now       func() time.Time
}

func NewLocalStore(root, urlPrefix, secret string) (*LocalStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("storage: empty root")
	}
	if secret == "" {
		return nil, errors.New("storage: empty signing secret")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("无法创建存储目录 '%s': %w", root, err)
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &LocalStore{root: root, urlPrefix: urlPrefix, secret: []byte(secret), now: time.Now}, nil
}

func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Put(ctx context.Context, objectPath string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	target, err := secureJoin(s.root, objectPath)
	if err != nil {
		return 0, err
	}
	if _, err := os.Lstat(target); err == nil {
		return 0, fmt.Errorf("storage: object already exists: %s", objectPath)
	}
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	// 先写临时文件再重命名，避免出现半截文件
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return 0, err
	}
	tmpName := tmp.Name()
	n, copyErr := io.Copy(tmp, r)
	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tmpName)
		if copyErr != nil {
			return 0, copyErr
		}
		return 0, closeErr
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return 0, err
	}
	return n, nil
}

func (s *LocalStore) Remove(ctx context.Context, objectPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := secureJoin(s.root, objectPath)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *LocalStore) Open(ctx context.Context, objectPath string) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := secureJoin(s.root, objectPath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, ErrNotFound
	}
	return &Object{ReadSeekCloser: f, Name: info.Name(), Size: info.Size(), ModTime: info.ModTime()}, nil
}

func (s *LocalStore) List(ctx context.Context) (map[string]time.Time, error) {
	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return nil, err
	}
	out := make(map[string]time.Time)
	err = filepath.WalkDir(rootAbs, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || d.Type()&fs.ModeSymlink != 0 || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		rel, err := filepath.Rel(rootAbs, p)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = info.ModTime()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LocalStore) SignURL(_ context.Context, objectPath string, ttl time.Duration) (string, error) {
	cleaned, err := CleanObjectPath(objectPath)
	if err != nil {
		return "", err
	}
	now := s.now()
	claims := blobClaims{
		Path: cleaned,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    blobTokenIssuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return s.urlPrefix + cleaned + "?token=" + url.QueryEscape(token), nil
}

func (s *LocalStore) VerifyToken(objectPath, token string) error {
	cleaned, err := CleanObjectPath(objectPath)
	if err != nil {
		return err
	}
	if token == "" {
		return ErrInvalidToken
	}
	parsed, err := jwt.ParseWithClaims(token, &blobClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(blobTokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*blobClaims)
	if !ok || !parsed.Valid || claims.Path != cleaned {
		return ErrInvalidToken
	}
	return nil
}
