// Package postgresstore persists catalog products in PostgreSQL and evaluates
// product filters as SQL instead of in-process specifications.
//
// A Filter built with catalog.BuildProductFilter compiles into a WHERE clause:
// the colors and sizes of one filter item are matched with IN, both sides of
// an item are combined with AND, and multiple items are combined with OR. An
// empty filter matches every product.
//
// The store works with pgxpool.Pool, sql.DB, or sqlx.DB connections through
// the shared adapter layer.
package postgresstore
