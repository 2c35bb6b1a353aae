// Package database 实现基于 GORM 的持久化网关。
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/config"
)

// Open 建立数据库连接并完成 schema 迁移
func Open(cfg config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	// clientFoundRows: RowsAffected 统计 WHERE 命中的行而非实际改动的行,
	// 仓储层用 RowsAffected==0 判定记录不存在,值恰好相同的更新不能误报
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=True&loc=Local&charset=utf8mb4&clientFoundRows=true",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		// 唯一索引冲突翻译为 gorm.ErrDuplicatedKey，
		// 仓储层再映射为领域 Conflict 错误
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(db); err != nil {
		sqlDB.Close()
		return nil, err
	}

	logger.Info("database connected",
		"host", cfg.Host,
		"database", cfg.Database,
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	return db, nil
}

// Migrate 创建或更新表结构
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userModel{}, &projectModel{}, &apiModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close 关闭数据库连接
func Close(db *gorm.DB, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
		return err
	}
	logger.Info("database closed")
	return nil
}
