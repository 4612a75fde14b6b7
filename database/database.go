package database

import (
	"fmt"
	"time"

	"github.com/achyut02/Ai-Placement-Tracker/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	connectAttempts = 5
	connectDelay    = 5 * time.Second
)

// NewDatabase opens the Postgres connection with a bounded retry loop.
// If every attempt fails the process keeps running without a database:
// a nil *gorm.DB is returned and repositories answer with an
// "unavailable" error until the next restart. Availability over
// consistency, matching the rest of the system.
func NewDatabase(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err == nil {
			log.Info().Str("host", cfg.Database.Host).Str("name", cfg.Database.Name).Msg("Connected to database")
			return db
		}
		log.Warn().Err(err).Int("attempt", attempt).Int("maxAttempts", connectAttempts).Msg("Database connection failed, retrying")
		if attempt < connectAttempts {
			time.Sleep(connectDelay)
		}
	}

	log.Error().Err(err).Msg("Could not connect to database after all attempts. Continuing without DB; data routes will report errors.")
	return nil
}

// Ping checks connectivity for the health endpoint.
func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database is not connected")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
