// Package gormstore: альтернативное хранилище на gorm (DB_DRIVER=gorm).
// Проекции собираются пакетными запросами, без специфичного для Postgres SQL,
// поэтому тот же код работает и на sqlite в тестах.
package gormstore

import (
	"context"
	"errors"
	"strings"

	"conduit/internal/repository"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate создаёт таблицы через AutoMigrate.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&userRow{},
		&followRow{},
		&articleRow{},
		&tagRow{},
		&articleTagRow{},
		&favoriteRow{},
		&commentRow{},
	)
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translate(err error, field string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case isDuplicate(err):
		return &repository.ConflictError{Field: field, Err: err}
	}
	return err
}

// isDuplicate понимает и переведённую ошибку gorm, и сырые тексты драйверов.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key")
}
