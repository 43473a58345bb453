package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"metacatalog/internal/config"
)

// EnsureDatabaseExists creates the catalog database when it is missing. It
// connects with admin credentials against the default postgres database.
func EnsureDatabaseExists(cfg *config.Config, logger *zap.SugaredLogger) error {
	if cfg.DBAdminUser == "" || cfg.DBAdminPassword == "" {
		logger.Debug("No admin credentials configured, skipping database bootstrap")
		return nil
	}

	pool, err := pgxpool.New(context.Background(), cfg.AdminDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := pool.QueryRow(ctx, query, cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		logger.Infof("Database '%s' already exists", cfg.DBName)
		return nil
	}

	logger.Infof("Database '%s' does not exist. Creating it...", cfg.DBName)

	// CREATE DATABASE cannot run inside a transaction, so it goes through a
	// plain Exec. The name is quoted to handle special characters.
	quoted := pgx.Identifier{cfg.DBName}.Sanitize()
	if _, err := pool.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", quoted)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	logger.Infof("Database '%s' created successfully", cfg.DBName)
	return nil
}

// Connect opens the pgx connection pool for the catalog database and verifies
// it with a ping.
func Connect(cfg *config.Config, logger *zap.SugaredLogger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check your .env file): %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Infof("Connected to database %s at %s:%s", cfg.DBName, cfg.DBHost, cfg.DBPort)
	return pool, nil
}
