// Package db opens the MySQL connection and runs schema migrations.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authadapters "portal_backend/internal/feature/auth/adapters"
	"portal_backend/internal/feature/auth/domain/entity"
)

// Config holds the database connection settings, read from the environment.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
}

// ConfigFromEnv reads the database settings from environment variables.
func ConfigFromEnv() Config {
	return Config{
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
	}
}

// BuildDSN builds the MySQL DSN string for the given config.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// OpenDB connects to MySQL, retrying for up to a minute while the
// database comes up, then runs migrations when RUN_MIGRATIONS is set.
func OpenDB() *gorm.DB {
	dsn := BuildDSN(ConfigFromEnv())

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&entity.User{},
			&authadapters.SessionModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
