// Package testutil provides in-process test doubles: an in-memory SQLite
// database in place of PostgreSQL and miniredis in place of Redis. No Docker
// required.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"kinovzor/internal/config"
	"kinovzor/internal/model"
	"kinovzor/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbCounter int64

// NewTestDB opens a fresh in-memory database with the full schema migrated.
// Each call gets its own database, so tests stay isolated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A unique name per database; cache=shared keeps it alive across the
	// connections gorm pools.
	name := fmt.Sprintf("testdb%d", atomic.AddInt64(&dbCounter, 1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.Review{},
		&model.Favorite{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// NewTestRedis starts a miniredis server and returns a client bound to it.
func NewTestRedis(t *testing.T) *goredis.Client {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

// InitLogger sets up the global logger for tests. Services log freely, so
// every service test needs this.
func InitLogger(t *testing.T) {
	t.Helper()
	if err := logger.Init("error", "console", "stdout", ""); err != nil {
		t.Fatalf("failed to init test logger: %v", err)
	}
}

// LoadConfig loads a minimal config so token generation works in tests.
func LoadConfig(t *testing.T) {
	t.Helper()

	content := `app:
  name: kinovzor-test
  version: test
  mode: test
  port: 0
jwt:
  secret: test-secret
  expire_hours: 1
log:
  level: error
  format: console
  output: stdout
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := config.Load(path); err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}
}
