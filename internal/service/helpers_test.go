package service

import (
	"context"
	"course_backend/internal/config"
	"course_backend/internal/repository"
	"course_backend/pkg/database"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) repository.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "service.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return repository.NewStore(db, 5*time.Second)
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		JWT:        config.JWTConfig{Secret: "test-secret-test-secret-test-secret", ExpireTime: time.Hour},
		Storage:    config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
		BcryptCost: 4,
	}
}

type MockDeleter struct {
	mock.Mock
}

func (m *MockDeleter) SoftDelete(ctx context.Context, kind repository.ParentKind, parentID uint) error {
	return m.Called(ctx, kind, parentID).Error(0)
}

func strPtr(s string) *string { return &s }
