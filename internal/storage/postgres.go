package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Config holds PostgreSQL connection settings. Populated from the environment
// with the CALCULATOR_DB_* prefix via envconfig.
type Config struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5432"`
	User     string `envconfig:"USER" default:"postgres"`
	Password string `envconfig:"PASSWORD" default:"postgres"`
	Name     string `envconfig:"NAME" default:"calculator_db"`
	SSLMode  string `envconfig:"SSLMODE" default:"disable"`
}

// DSN returns the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Open connects to PostgreSQL and verifies the connection with a ping.
func Open(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("pg open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}
	return db, nil
}

const createCalculationsTable = `
CREATE TABLE IF NOT EXISTS calculations (
	id         SERIAL PRIMARY KEY,
	operation  VARCHAR(50) NOT NULL,
	operand_a  DOUBLE PRECISION NOT NULL,
	operand_b  DOUBLE PRECISION,
	result     DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_calculations_operation ON calculations (operation);
CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations (created_at);
`

// Migrate creates the calculations table and its indexes if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, createCalculationsTable)
	return err
}
