package db

import (
	"context"
	"fmt"
	"time"

	"conduit/internal/config"
	"conduit/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	maxConnLifetime = time.Hour
	maxConnIdleTime = 30 * time.Minute
	connectTimeout  = 30 * time.Second
)

func NewPostgresConnection(cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = cfg.DbMaxConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	logger.Log.Info("Подключение к БД установлено",
		zap.String("dsn", cfg.GetDSNSafe()),
		zap.Int32("max_conns", poolConfig.MaxConns),
	)
	return pool, nil
}

// NewGormConnection: соединение для DB_DRIVER=gorm.
func NewGormConnection(cfg *config.Config) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.Env == "dev" {
		level = gormlogger.Info
	}
	gdb, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(int(cfg.DbMaxConns))
	sqlDB.SetConnMaxLifetime(maxConnLifetime)
	sqlDB.SetConnMaxIdleTime(maxConnIdleTime)

	logger.Log.Info("Подключение к БД установлено (gorm)", zap.String("dsn", cfg.GetDSNSafe()))
	return gdb, nil
}
