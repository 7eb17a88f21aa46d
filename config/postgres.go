package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver for database/sql and sqlx
)

var (
	// ErrParsingEnvFailed occurs when the environment variables cannot be parsed into the config.
	ErrParsingEnvFailed = errors.New("parsing environment variables failed")

	// ErrOpeningDatabaseFailed occurs when a database connection cannot be opened.
	ErrOpeningDatabaseFailed = errors.New("opening database connection failed")

	// ErrPingingDatabaseFailed occurs when the opened database connection does not answer a ping.
	ErrPingingDatabaseFailed = errors.New("pinging database failed")
)

const (
	defaultMaxOpenConnections = 50
	defaultMaxIdleConnections = 10
	defaultMaxConnLifetime    = time.Hour
	defaultMaxConnIdleTime    = time.Minute * 5
	defaultPoolMaxConnections = int32(8)
	defaultPoolMinConnections = int32(2)
	defaultHealthCheckPeriod  = time.Minute
	defaultConnectTimeout     = time.Second * 5
)

// PostgresConfig holds the connection settings for a PostgreSQL database.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST"     envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT"     envDefault:"5432"`
	User     string `env:"POSTGRES_USER"     envDefault:"test"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"test"`
	Database string `env:"POSTGRES_DB"       envDefault:"solidkit"`
	SSLMode  string `env:"POSTGRES_SSLMODE"  envDefault:"disable"`
}

// LoadPostgresConfig parses a PostgresConfig from environment variables,
// falling back to local development defaults.
func LoadPostgresConfig() (PostgresConfig, error) {
	var cfg PostgresConfig

	if err := env.Parse(&cfg); err != nil {
		return PostgresConfig{}, errors.Join(ErrParsingEnvFailed, err)
	}

	return cfg, nil
}

// DSN returns the connection string for this config.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode,
	)
}

// PGXPoolConfig creates a pgxpool.Config with pre-configured pool settings.
func (c PostgresConfig) PGXPoolConfig() (*pgxpool.Config, error) {
	dbConfig, err := pgxpool.ParseConfig(c.DSN())
	if err != nil {
		return nil, errors.Join(ErrOpeningDatabaseFailed, err)
	}

	dbConfig.MaxConns = defaultPoolMaxConnections
	dbConfig.MinConns = defaultPoolMinConnections
	dbConfig.MaxConnLifetime = defaultMaxConnLifetime
	dbConfig.MaxConnIdleTime = defaultMaxConnIdleTime
	dbConfig.HealthCheckPeriod = defaultHealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	return dbConfig, nil
}

// OpenPGXPool opens a pgxpool.Pool and verifies the connection with a ping.
func (c PostgresConfig) OpenPGXPool(ctx context.Context) (*pgxpool.Pool, error) {
	dbConfig, configErr := c.PGXPoolConfig()
	if configErr != nil {
		return nil, configErr
	}

	pool, openErr := pgxpool.NewWithConfig(ctx, dbConfig)
	if openErr != nil {
		return nil, errors.Join(ErrOpeningDatabaseFailed, openErr)
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, errors.Join(ErrPingingDatabaseFailed, pingErr)
	}

	return pool, nil
}

// OpenSQLDB opens a configured *sql.DB using the lib/pq driver and verifies
// the connection with a ping.
func (c PostgresConfig) OpenSQLDB(ctx context.Context) (*sql.DB, error) {
	db, openErr := sql.Open("postgres", c.DSN())
	if openErr != nil {
		return nil, errors.Join(ErrOpeningDatabaseFailed, openErr)
	}

	db.SetMaxOpenConns(defaultMaxOpenConnections)
	db.SetMaxIdleConns(defaultMaxIdleConnections)
	db.SetConnMaxLifetime(defaultMaxConnLifetime)
	db.SetConnMaxIdleTime(defaultMaxConnIdleTime)

	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		return nil, errors.Join(ErrPingingDatabaseFailed, pingErr)
	}

	return db, nil
}

// OpenSQLX opens a configured *sqlx.DB using the lib/pq driver and verifies
// the connection with a ping.
func (c PostgresConfig) OpenSQLX(ctx context.Context) (*sqlx.DB, error) {
	db, openErr := sqlx.Open("postgres", c.DSN())
	if openErr != nil {
		return nil, errors.Join(ErrOpeningDatabaseFailed, openErr)
	}

	db.SetMaxOpenConns(defaultMaxOpenConnections)
	db.SetMaxIdleConns(defaultMaxIdleConnections)
	db.SetConnMaxLifetime(defaultMaxConnLifetime)
	db.SetConnMaxIdleTime(defaultMaxConnIdleTime)

	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		return nil, errors.Join(ErrPingingDatabaseFailed, pingErr)
	}

	return db, nil
}
