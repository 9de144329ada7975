package storage

import (
	"os"
	"sync"
	"time"

	"tofu-workspaces-backend/internal/config"
	"tofu-workspaces-backend/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var log = logger.GetLogger()

var (
	db   *gorm.DB
	once sync.Once
)

// GetDb returns the shared gorm handle. The connection is opened lazily
// on first use and reused for the process lifetime.
func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	cfg := config.GetEnv()

	gormLogLevel := gorm_logger.Warn
	if cfg.IsTesting {
		gormLogLevel = gorm_logger.Silent
	}

	conn, err := gorm.Open(postgres.Open(cfg.DatabaseDsn), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	sqlDb, err := conn.DB()
	if err != nil {
		log.Error("Failed to get sql.DB from gorm", "error", err)
		os.Exit(1)
	}

	sqlDb.SetMaxOpenConns(25)
	sqlDb.SetMaxIdleConns(5)
	sqlDb.SetConnMaxLifetime(30 * time.Minute)

	db = conn
}
