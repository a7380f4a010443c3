package database

import (
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cafedir/model"
)

var DB *gorm.DB

// Open connects to the store named by the DSN. Postgres DSNs keep their
// driver; anything else is treated as a SQLite file path, so the default
// deployment is a single file next to the binary.
func Open(dsn string) (*gorm.DB, error) {
	dialector := sqlite.Open(dsn)
	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		dialector = postgres.Open(dsn)
	}

	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
}

// Init opens the configured store and bootstraps the schema. Migration is
// idempotent and runs before the server accepts requests.
func Init(dsn string) error {
	db, err := Open(dsn)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Ping(); err != nil {
		return err
	}

	if err := db.AutoMigrate(&model.Cafe{}); err != nil {
		return err
	}

	DB = db
	log.Info().Str("dsn", dsn).Msg("Database connected and schema migrated")
	return nil
}
