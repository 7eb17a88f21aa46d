// Package specification provides generic predicate combinators.
//
// A Specification decides whether a candidate value meets a criterion.
// Specifications compose with And, Or and Not, and a slice of candidates
// can be filtered lazily against a composed specification.
//
// Common usage pattern:
//
//	green := catalog.ColorIs(catalog.ColorGreen)
//	large := catalog.SizeIs(catalog.SizeLarge)
//
//	both, err := specification.And(green, large)
//	if err != nil {
//		// handle error
//	}
//
//	for product := range specification.Filter(products, both) {
//		// only green AND large products
//	}
package specification
