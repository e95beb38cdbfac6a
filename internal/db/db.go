package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a GORM session for the configured driver.
// TranslateError is enabled so unique and composite key violations
// surface as gorm.ErrDuplicatedKey regardless of driver.
func Connect(ctx context.Context, driver, dsn string) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(sqliteDSN(dsn))
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	database, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}

	if driver == "postgres" {
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	} else {
		// SQLite serialises writers anyway; a single connection also keeps
		// in-memory databases alive for the whole process.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return database, nil
}

// sqliteDSN forces foreign key enforcement on, which SQLite leaves off
// unless asked. Cascaded deletes on user_roles depend on it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_fk=") || strings.Contains(dsn, "_foreign_keys=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_fk=1"
}

// Close releases the underlying sql.DB resources for the provided GORM handle.
func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
