package catalog

import (
	"github.com/solidkit/solidkit-go/specification"
)

// MemoryStore is an in-memory product collection.
//
// Products keep their insertion order; queries never mutate the store.
// The zero value is ready to use.
type MemoryStore struct {
	products Products
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add appends a product to the store.
func (s *MemoryStore) Add(product Product) {
	s.products = append(s.products, product)
}

// All returns a copy of all products in insertion order.
func (s *MemoryStore) All() Products {
	all := make(Products, len(s.products))
	copy(all, s.products)

	return all
}

// Count returns the number of products in the store.
func (s *MemoryStore) Count() int {
	return len(s.products)
}

// Query returns the products matching the filter, preserving insertion order.
func (s *MemoryStore) Query(filter Filter) Products {
	return specification.Collect(s.products, filter.Specification())
}

// QuerySpecification returns the products satisfying an arbitrary
// specification, preserving insertion order.
func (s *MemoryStore) QuerySpecification(spec specification.Specification[Product]) Products {
	return specification.Collect(s.products, spec)
}
