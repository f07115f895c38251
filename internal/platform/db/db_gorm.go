// Package db opens and migrates the service database.
package db

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "survey_backend/internal/feature/auth/domain/entity"
	surveyentity "survey_backend/internal/feature/survey/domain/entity"
)

// Config selects the storage backend. A non-empty PostgresDSN wins;
// otherwise the embedded SQLite file (":memory:" included) is used.
type Config struct {
	PostgresDSN string
	SQLitePath  string
}

// LoadConfigFromEnv reads the database configuration from the environment.
// DATABASE_URL selects Postgres; SQLITE_PATH overrides the default SQLite
// file.
func LoadConfigFromEnv() Config {
	cfg := Config{
		PostgresDSN: os.Getenv("DATABASE_URL"),
		SQLitePath:  os.Getenv("SQLITE_PATH"),
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "./survey.db"
	}
	return cfg
}

// Opener abstracts gorm.Open so retry behavior is testable without a
// database.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry keeps calling open until it succeeds or the timeout
// elapses, pausing between attempts. Used for Postgres, which may come up
// after the service in container environments.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, err
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// gormConfig enables driver error translation so duplicate-key violations
// surface as gorm.ErrDuplicatedKey on both backends. The repositories
// depend on that for uniqueness reporting.
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// OpenDB opens the configured database and runs migrations. Bootstrap
// failures are fatal.
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()

	var (
		db  *gorm.DB
		err error
	)
	if cfg.PostgresDSN != "" {
		db, err = ConnectWithRetry(cfg.PostgresDSN, 60*time.Second, func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gormConfig())
		})
		if err != nil {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormConfig())
		if err != nil {
			log.Fatalf("failed to open sqlite database %s: %v", cfg.SQLitePath, err)
		}
	}

	if err := db.AutoMigrate(
		&authentity.User{},
		&surveyentity.Submission{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
