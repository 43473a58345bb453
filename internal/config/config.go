package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds the environment-driven settings for the catalog server.
type Config struct {
	HTTPPort int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Admin credentials are only used to bootstrap the catalog database itself.
	DBAdminUser     string
	DBAdminPassword string
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:        8080,
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBUser:          os.Getenv("DB_USERNAME"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_DATABASE"),
		DBAdminUser:     os.Getenv("DB_ADMIN_USER"),
		DBAdminPassword: os.Getenv("DB_ADMIN_PASSWORD"),
	}

	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", p, err)
		}
		cfg.HTTPPort = port
	}

	for name, value := range map[string]string{
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_USERNAME": cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
		"DB_DATABASE": cfg.DBName,
	} {
		if value == "" {
			return nil, fmt.Errorf("%s environment variable is required", name)
		}
	}

	return cfg, nil
}

// DSN builds the postgres:// connection string for the catalog database.
func (c *Config) DSN() string {
	userInfo := url.UserPassword(c.DBUser, c.DBPassword)
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		c.DBHost,
		c.DBPort,
		url.PathEscape(c.DBName),
	)
}

// AdminDSN builds the connection string used for database bootstrap. It targets
// the default postgres database because the catalog database may not exist yet.
func (c *Config) AdminDSN() string {
	userInfo := url.UserPassword(c.DBAdminUser, c.DBAdminPassword)
	return fmt.Sprintf(
		"postgres://%s@%s:%s/postgres?sslmode=disable",
		userInfo.String(),
		c.DBHost,
		c.DBPort,
	)
}
