// Package postgresengine provides a durable journal backed by PostgreSQL.
//
// Entries of all journals share one table; each journal is identified by its
// name and numbers its entries independently, starting at 1. Appending is
// guarded by optimistic concurrency control: the caller passes the maximum
// entry number it observed when it last queried, and the append only succeeds
// if no other writer has appended in the meantime. A lost race is reported as
// journal.ErrConcurrencyConflict, which is safe to retry with
// journal.RetryOnConflict.
//
// The engine works with pgxpool.Pool, sql.DB, or sqlx.DB connections through
// its adapter layer, and supports optional structured logging, metrics, and
// tracing through the dependency-free interfaces of the journal package.
package postgresengine
