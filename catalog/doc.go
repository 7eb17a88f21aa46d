// Package catalog provides the product model and a composable product
// filter for querying catalogs.
//
// Products are immutable value objects built through a validating factory.
// Filters are built with a staged fluent builder which only allows useful
// combinations of color and size criteria, and can be evaluated in-process
// against a MemoryStore or translated to SQL by the postgresstore engine.
//
// Common usage pattern:
//
//	filter := catalog.BuildProductFilter().
//		Matching().
//		AnyColorOf(catalog.ColorGreen).
//		AndAnySizeOf(catalog.SizeLarge, catalog.SizeYuge).
//		Finalize()
//
//	matches := store.Query(filter)
package catalog
