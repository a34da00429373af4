package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens the embedded single-file store. Pass ":memory:" for a
// throwaway database.
func NewSQLiteDB(path string, logLevel logger.LogLevel) (*gorm.DB, error) {
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sqlite handle: %w", err)
	}

	// SQLite allows one writer; a single connection also keeps ":memory:"
	// databases from splitting across connections.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
