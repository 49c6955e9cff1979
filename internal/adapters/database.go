package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	"github.com/h44z/groupbackend-portal/internal/config"
	"github.com/h44z/groupbackend-portal/internal/domain"
)

// SchemaVersion describes the current database schema version. It must be incremented if a manual migration is needed.
var SchemaVersion uint64 = 1

// SysStat stores the current database schema version and the timestamp when it was applied.
type SysStat struct {
	MigratedAt    time.Time `gorm:"column:migrated_at"`
	SchemaVersion uint64    `gorm:"primaryKey;column:schema_version"`
}

// GormLogger is a custom logger for Gorm, making it use slog
type GormLogger struct {
	SlowThreshold           time.Duration
	SourceField             string
	IgnoreErrRecordNotFound bool
	Debug                   bool
	Silent                  bool

	prefix string
}

func NewLogger(slowThreshold time.Duration, debug bool) *GormLogger {
	return &GormLogger{
		SlowThreshold:           slowThreshold,
		Debug:                   debug,
		IgnoreErrRecordNotFound: true,
		Silent:                  false,
		SourceField:             "src",
		prefix:                  "GORM-SQL: ",
	}
}

func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	l.Silent = level == logger.Silent
	return l
}

func (l *GormLogger) Info(ctx context.Context, s string, args ...any) {
	if l.Silent {
		return
	}
	slog.InfoContext(ctx, l.prefix+s, args...)
}

func (l *GormLogger) Warn(ctx context.Context, s string, args ...any) {
	if l.Silent {
		return
	}
	slog.WarnContext(ctx, l.prefix+s, args...)
}

func (l *GormLogger) Error(ctx context.Context, s string, args ...any) {
	if l.Silent {
		return
	}
	slog.ErrorContext(ctx, l.prefix+s, args...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	attrs := []any{
		"rows", rows,
		"duration", elapsed,
	}

	if l.SourceField != "" {
		attrs = append(attrs, l.SourceField, utils.FileWithLineNum())
	}

	if err != nil && !(errors.Is(err, gorm.ErrRecordNotFound) && l.IgnoreErrRecordNotFound) {
		attrs = append(attrs, "error", err)
		slog.ErrorContext(ctx, l.prefix+sql, attrs...)
		return
	}

	if l.SlowThreshold != 0 && elapsed > l.SlowThreshold {
		slog.WarnContext(ctx, l.prefix+sql, attrs...)
		return
	}

	if l.Debug {
		slog.DebugContext(ctx, l.prefix+sql, attrs...)
	}
}

// NewDatabase creates a new database connection and returns a Gorm database instance.
func NewDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: NewLogger(cfg.SlowQueryThreshold, cfg.Debug),
	}

	switch cfg.Type {
	case config.DatabaseMySQL:
		gormDb, err := gorm.Open(mysql.Open(cfg.DSN), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w", err)
		}

		sqlDB, _ := gormDb.DB()
		sqlDB.SetConnMaxLifetime(time.Minute * 5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetMaxOpenConns(10)
		if err = sqlDB.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping MySQL database: %w", err)
		}
		return gormDb, nil
	case config.DatabaseMsSQL:
		gormDb, err := gorm.Open(sqlserver.Open(cfg.DSN), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlserver database: %w", err)
		}
		return gormDb, nil
	case config.DatabasePostgres:
		gormDb, err := gorm.Open(postgres.Open(cfg.DSN), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open Postgres database: %w", err)
		}
		return gormDb, nil
	case config.DatabaseSQLite:
		if cfg.DSN != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0700); err != nil {
				return nil, fmt.Errorf("failed to create database base directory: %w", err)
			}
		}
		gormCfg.DisableForeignKeyConstraintWhenMigrating = true
		gormDb, err := gorm.Open(sqlite.Open(cfg.DSN), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		sqlDB, _ := gormDb.DB()
		sqlDB.SetMaxOpenConns(1)
		return gormDb, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}

// SqlRepo is a SQL database repository implementation.
// Currently, it supports MySQL, SQLite, Microsoft SQL and Postgresql database systems.
type SqlRepo struct {
	db *gorm.DB
}

// NewSqlRepository creates a new SqlRepo instance and migrates the database schema.
func NewSqlRepository(db *gorm.DB) (*SqlRepo, error) {
	repo := &SqlRepo{
		db: db,
	}

	if err := repo.migrate(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

func (r *SqlRepo) migrate() error {
	if err := r.db.AutoMigrate(&SysStat{}); err != nil {
		return fmt.Errorf("sys-stat migration failed: %w", err)
	}
	if err := r.db.AutoMigrate(&domain.UserGroupBackend{}); err != nil {
		return fmt.Errorf("user group backend migration failed: %w", err)
	}
	if err := r.db.AutoMigrate(&domain.AuditEntry{}); err != nil {
		return fmt.Errorf("audit data migration failed: %w", err)
	}
	slog.Debug("database migrations applied")

	existingSysStat := SysStat{}
	r.db.Where("schema_version = ?", SchemaVersion).First(&existingSysStat)
	if existingSysStat.SchemaVersion == 0 {
		sysStat := SysStat{
			MigratedAt:    time.Now(),
			SchemaVersion: SchemaVersion,
		}
		if err := r.db.Create(&sysStat).Error; err != nil {
			return fmt.Errorf("failed to write sysstat entry for schema version %d: %w", SchemaVersion, err)
		}
		slog.Debug("sys-stat entry written", "schema_version", SchemaVersion)
	}

	return nil
}

// region user-group-backends

// GetUserGroupBackend returns the user group backend with the given id.
// If no backend is found, an error domain.ErrNotFound is returned.
func (r *SqlRepo) GetUserGroupBackend(ctx context.Context, id domain.UserGroupBackendIdentifier) (
	*domain.UserGroupBackend,
	error,
) {
	var backend domain.UserGroupBackend

	err := r.db.WithContext(ctx).Where("identifier = ?", id).First(&backend).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &backend, nil
}

// GetAllUserGroupBackends returns all user group backends, ordered by name.
func (r *SqlRepo) GetAllUserGroupBackends(ctx context.Context) ([]domain.UserGroupBackend, error) {
	var backends []domain.UserGroupBackend

	err := r.db.WithContext(ctx).Order("identifier asc").Find(&backends).Error
	if err != nil {
		return nil, err
	}

	return backends, nil
}

// SaveUserGroupBackend updates the user group backend with the given id.
// If no backend is found, a new one is created.
func (r *SqlRepo) SaveUserGroupBackend(
	ctx context.Context,
	id domain.UserGroupBackendIdentifier,
	updateFunc func(b *domain.UserGroupBackend) (*domain.UserGroupBackend, error),
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		backend, err := r.getOrCreateUserGroupBackend(tx, id)
		if err != nil {
			return err // return any error will roll back
		}

		backend, err = updateFunc(backend)
		if err != nil {
			return err
		}

		backend.Identifier = id
		backend.UpdatedAt = time.Now()
		if err := tx.Save(backend).Error; err != nil {
			return err
		}

		// return nil will commit the whole transaction
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (r *SqlRepo) getOrCreateUserGroupBackend(tx *gorm.DB, id domain.UserGroupBackendIdentifier) (
	*domain.UserGroupBackend,
	error,
) {
	var backend domain.UserGroupBackend

	err := tx.Where("identifier = ?", id).First(&backend).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.UserGroupBackend{
			Identifier: id,
			CreatedAt:  time.Now(),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return &backend, nil
}

// DeleteUserGroupBackend deletes the user group backend with the given id.
// If no backend is found, an error domain.ErrNotFound is returned.
func (r *SqlRepo) DeleteUserGroupBackend(ctx context.Context, id domain.UserGroupBackendIdentifier) error {
	result := r.db.WithContext(ctx).Where("identifier = ?", id).Delete(&domain.UserGroupBackend{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// endregion user-group-backends

// region audit

// SaveAuditEntry saves the given audit entry.
func (r *SqlRepo) SaveAuditEntry(ctx context.Context, entry *domain.AuditEntry) error {
	err := r.db.WithContext(ctx).Save(entry).Error
	if err != nil {
		return err
	}

	return nil
}

// GetAllAuditEntries retrieves all audit entries from the database.
// The entries are ordered by timestamp, with the newest entries first.
func (r *SqlRepo) GetAllAuditEntries(ctx context.Context) ([]domain.AuditEntry, error) {
	var entries []domain.AuditEntry
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// endregion audit
