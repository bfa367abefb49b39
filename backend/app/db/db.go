package db

import (
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Driver string // "sqlite" (default) or "mysql"
	DSN    string
}

func Connect(cfg Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if cfg.Driver == "mysql" {
		return gorm.Open(mysql.Open(cfg.DSN), gcfg)
	}
	dsn := cfg.DSN
	// busy_timeout keeps concurrent claim deletes waiting instead of
	// failing with SQLITE_BUSY.
	if !strings.Contains(dsn, "?") {
		dsn += "?_busy_timeout=5000&_journal_mode=WAL"
	}
	return gorm.Open(sqlite.Open(dsn), gcfg)
}
