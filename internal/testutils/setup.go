package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"ufsbd-cms-server/internal/db"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var memoryDBSeq atomic.Int64

// openMemoryDB 每次调用得到独立命名的共享缓存内存库，单连接保证同一库
func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("file:ufsbd_test_%d?mode=memory&cache=shared", memoryDBSeq.Add(1))
	gdb, err := gorm.Open(sqlite.Open(name), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

// SetupDB 迁移后的内存库，测试期间替换全局 db.DB，结束时恢复
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb := openMemoryDB(t)
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}

	prev := db.DB
	db.DB = gdb
	t.Cleanup(func() {
		if db.DB == gdb {
			db.DB = prev
		}
	})
	return gdb
}
