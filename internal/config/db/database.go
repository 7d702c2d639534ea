package db

import (
	"fmt"
	"log/slog"

	"github.com/linskybing/freelance-market/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the Postgres connection described by the config package.
func Init() error {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	logLevel := logger.Warn
	if config.LogLevel == "debug" {
		logLevel = logger.Info
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	DB = conn

	slog.Info("database connected", "host", config.DbHost, "db", config.DbName)
	return nil
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
