// Package config provides database configuration helpers for PostgreSQL
// connections.
//
// PostgresConfig is parsed from environment variables with sensible local
// defaults, and factory functions create connections for the supported
// drivers (pgxpool.Pool, sql.DB, sqlx.DB) with pre-configured pool settings.
package config
