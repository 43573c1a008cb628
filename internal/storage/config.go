package storage

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Config defines fields used for building the PostgreSQL connection string, parsed from environment variables
type Config struct {
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     uint16 `env:"DB_PORT" envDefault:"5432"`
	DBName   string `env:"DB_NAME" envDefault:"pony_express"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN returns connection string in keyword/value format
func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("user=%s password=%s host=%s port=%d dbname=%s sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, sslMode)
}

// Option alters the default configuration of the pgxpool.Config used during new Store construction
type Option interface {
	apply(*pgxpool.Config)
}

type optionFunc func(c *pgxpool.Config)

func (f optionFunc) apply(c *pgxpool.Config) { f(c) }

// ConnectionTimeout sets timeout for connection to be established
func ConnectionTimeout(d time.Duration) Option {
	return optionFunc(func(c *pgxpool.Config) {
		c.ConnConfig.ConnectTimeout = d
	})
}

// MaxConns limits the number of connections kept by the pool
func MaxConns(n int32) Option {
	return optionFunc(func(c *pgxpool.Config) {
		c.MaxConns = n
	})
}
