package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Registers postgres driver.
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// PostgresConfig describes connection to postgres database.
type PostgresConfig struct {
	DSN          string
	MaxAttempts  int
	RetryBackoff time.Duration
	MaxOpenConns int
	MaxIdleConns int
}

// ConnectPostgres opens postgres connection pool and pings it, retrying until MaxAttempts is reached.
func ConnectPostgres(ctx context.Context, cfg PostgresConfig, l logrus.FieldLogger) (*sql.DB, error) {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		var db *sql.DB
		db, err = openPostgres(ctx, cfg)
		if err == nil {
			l.Infof("connected to postgres (attempt %d/%d)", attempt, cfg.MaxAttempts)
			return db, nil
		}
		l.Warnf("connecting to postgres (attempt %d/%d): %v", attempt, cfg.MaxAttempts, err)

		if attempt == cfg.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.RetryBackoff):
		}
	}

	return nil, fmt.Errorf("connecting to postgres after %d attempts: %w", cfg.MaxAttempts, err)
}

func openPostgres(ctx context.Context, cfg PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}
