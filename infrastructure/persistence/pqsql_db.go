package persistence

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jekoram/reelshorter/infrastructure/configuration"
	"github.com/jekoram/reelshorter/infrastructure/logger"

	_ "github.com/lib/pq"
)

// NewPostgreSQLDB opens the PostgreSQL connection pool from injected config.
func NewPostgreSQLDB(cfg configuration.Db) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot open PostgreSQL connection")
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot ping PostgreSQL")
		return nil, err
	}
	return db, nil
}
