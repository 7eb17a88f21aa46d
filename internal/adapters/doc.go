// Package adapters provides database adapter implementations for the
// PostgreSQL-backed stores of this module.
//
// It implements the adapter pattern to support multiple PostgreSQL database
// libraries: pgxpool.Pool, sql.DB, and sqlx.DB. All adapters provide
// equivalent functionality through a common DBAdapter interface, so the
// journal engine and the catalog store work with any supported connection
// type.
package adapters
