package infrastructure

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	sqliterepo "user-post-service/internal/adapter/db/sqlite"
	"user-post-service/internal/config"
	"user-post-service/pkg/logger"
)

// NewDatabase opens the SQLite store and creates its tables.
func NewDatabase(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	gormLogger := logger.NewGormLogger(l, cfg.Logger.SlowQuerySeconds, cfg.Logger.Level)

	db, err := gorm.Open(sqlite.Open(cfg.Store.SQLiteDSN), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// A second connection to :memory: would see a different, empty database.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := sqliterepo.AutoMigrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	l.Info("database opened", zap.String("driver", config.StoreDriverSQLite), zap.String("dsn", cfg.Store.SQLiteDSN))

	return db, nil
}

// CloseDatabase closes the database connection
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
