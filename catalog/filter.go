package catalog

import (
	"slices"

	"github.com/solidkit/solidkit-go/specification"
)

/***** Filter *****/

// Filter describes which products a query should match.
// An empty filter matches any product.
type Filter struct {
	items []FilterItem
}

// Items returns the filter items, combined with OR at query time.
func (f Filter) Items() []FilterItem {
	return f.items
}

// Specification compiles the filter into a product specification.
//
// Each FilterItem becomes (color OR color...) AND (size OR size...);
// the items are combined with OR. An item side with no criteria imposes
// no constraint, and an empty filter matches any product.
func (f Filter) Specification() specification.Specification[Product] {
	if len(f.items) == 0 {
		return matchAnyProduct()
	}

	var result specification.Specification[Product]

	for _, item := range f.items {
		itemSpec := item.specification()

		if result == nil {
			result = itemSpec
			continue
		}

		result, _ = specification.Or(result, itemSpec)
	}

	return result
}

func matchAnyProduct() specification.Specification[Product] {
	return specification.Func[Product](func(Product) bool { return true })
}

/***** FilterItem *****/

// FilterItem is one OR-branch of a Filter: the product must match any of the
// item's colors AND any of the item's sizes.
type FilterItem struct {
	colors []Color
	sizes  []Size
}

// Colors returns the colors of this item, matched with OR.
func (fi FilterItem) Colors() []Color {
	return fi.colors
}

// Sizes returns the sizes of this item, matched with OR.
func (fi FilterItem) Sizes() []Size {
	return fi.sizes
}

func (fi FilterItem) specification() specification.Specification[Product] {
	var colorSpec specification.Specification[Product]

	for _, color := range fi.colors {
		if colorSpec == nil {
			colorSpec = ColorIs(color)
			continue
		}

		colorSpec, _ = specification.Or(colorSpec, ColorIs(color))
	}

	var sizeSpec specification.Specification[Product]

	for _, size := range fi.sizes {
		if sizeSpec == nil {
			sizeSpec = SizeIs(size)
			continue
		}

		sizeSpec, _ = specification.Or(sizeSpec, SizeIs(size))
	}

	switch {
	case colorSpec == nil && sizeSpec == nil:
		return matchAnyProduct()
	case colorSpec == nil:
		return sizeSpec
	case sizeSpec == nil:
		return colorSpec
	}

	itemSpec, _ := specification.And(colorSpec, sizeSpec)

	return itemSpec
}

/***** FilterBuilder *****/

// FilterBuilder builds a generic product filter to be used by catalog store
// implementations to evaluate queries, in-process or in the specific query
// language of a database.
// It is designed with the idea to only allow "useful" filter combinations:
//
//   - empty filter
//   - (color)
//   - (color OR color...)
//   - (size)
//   - (size OR size...)
//   - (color AND size)
//   - (color AND (size OR size...))
//   - ((color OR color...) AND (size OR size...))
//   - ((color AND size) OR (color AND size)...) -> multiple FilterItem(s)
type FilterBuilder interface {
	// Matching starts a new FilterItem.
	Matching() EmptyFilterItemBuilder

	// MatchingAnyProduct directly creates an empty Filter.
	MatchingAnyProduct() Filter
}

// EmptyFilterItemBuilder offers the criteria a fresh FilterItem can start with.
type EmptyFilterItemBuilder interface {
	// AnyColorOf adds one or multiple Colors to the current FilterItem.
	//
	// It sanitizes the input:
	//	- removing Colors outside the known enumeration
	//	- sorting the Colors
	//	- removing duplicate Colors
	AnyColorOf(color Color, colors ...Color) FilterItemBuilderLackingSizes

	// AnySizeOf adds one or multiple Sizes to the current FilterItem.
	//
	// It sanitizes the input:
	//	- removing Sizes outside the known enumeration
	//	- sorting the Sizes
	//	- removing duplicate Sizes
	AnySizeOf(size Size, sizes ...Size) FilterItemBuilderLackingColors
}

// FilterItemBuilderLackingSizes completes a FilterItem that already has colors.
type FilterItemBuilderLackingSizes interface {
	// AndAnySizeOf adds one or multiple Sizes to the current FilterItem.
	AndAnySizeOf(size Size, sizes ...Size) CompletedFilterItemBuilder

	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// Finalize returns the Filter once it has at least one FilterItem with at least one Color OR one Size.
	Finalize() Filter
}

// FilterItemBuilderLackingColors completes a FilterItem that already has sizes.
type FilterItemBuilderLackingColors interface {
	// AndAnyColorOf adds one or multiple Colors to the current FilterItem.
	AndAnyColorOf(color Color, colors ...Color) CompletedFilterItemBuilder

	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// Finalize returns the Filter once it has at least one FilterItem with at least one Color OR one Size.
	Finalize() Filter
}

// CompletedFilterItemBuilder finalizes or extends a filter whose current item
// carries both colors and sizes.
type CompletedFilterItemBuilder interface {
	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// Finalize returns the Filter once it has at least one FilterItem with at least one Color OR one Size.
	Finalize() Filter
}

// filterBuilder implements all the interfaces of FilterBuilder.
type filterBuilder struct {
	filter            Filter
	currentFilterItem FilterItem
}

// BuildProductFilter creates a FilterBuilder which must eventually be finalized
// with Finalize() or MatchingAnyProduct().
func BuildProductFilter() FilterBuilder {
	return filterBuilder{}
}

// Matching starts a new FilterItem.
func (fb filterBuilder) Matching() EmptyFilterItemBuilder {
	fb.currentFilterItem = FilterItem{}

	return fb
}

// MatchingAnyProduct directly creates an empty filter.
func (fb filterBuilder) MatchingAnyProduct() Filter {
	return fb.filter
}

// AnyColorOf adds one or multiple Colors to the current FilterItem expecting ANY Color to match.
//
// It sanitizes the input:
//   - removing Colors outside the known enumeration
//   - sorting the Colors
//   - removing duplicate Colors
func (fb filterBuilder) AnyColorOf(color Color, colors ...Color) FilterItemBuilderLackingSizes {
	fb.currentFilterItem.colors = append(
		fb.currentFilterItem.colors,
		sanitizeColors(color, colors...)...,
	)

	return fb
}

// AndAnyColorOf adds one or multiple Colors to the current FilterItem expecting ANY Color to match.
func (fb filterBuilder) AndAnyColorOf(color Color, colors ...Color) CompletedFilterItemBuilder {
	fb.currentFilterItem.colors = append(
		fb.currentFilterItem.colors,
		sanitizeColors(color, colors...)...,
	)

	return fb
}

// AnySizeOf adds one or multiple Sizes to the current FilterItem expecting ANY Size to match.
//
// It sanitizes the input:
//   - removing Sizes outside the known enumeration
//   - sorting the Sizes
//   - removing duplicate Sizes
func (fb filterBuilder) AnySizeOf(size Size, sizes ...Size) FilterItemBuilderLackingColors {
	fb.currentFilterItem.sizes = append(
		fb.currentFilterItem.sizes,
		sanitizeSizes(size, sizes...)...,
	)

	return fb
}

// AndAnySizeOf adds one or multiple Sizes to the current FilterItem expecting ANY Size to match.
func (fb filterBuilder) AndAnySizeOf(size Size, sizes ...Size) CompletedFilterItemBuilder {
	fb.currentFilterItem.sizes = append(
		fb.currentFilterItem.sizes,
		sanitizeSizes(size, sizes...)...,
	)

	return fb
}

// OrMatching finalizes the current FilterItem and starts a new one.
func (fb filterBuilder) OrMatching() EmptyFilterItemBuilder {
	fb.filter.items = append(fb.filter.items, fb.currentFilterItem)
	fb.currentFilterItem = FilterItem{}

	return fb
}

// Finalize returns the Filter once it has at least one FilterItem with at least one Color OR one Size.
func (fb filterBuilder) Finalize() Filter {
	fb.filter.items = append(fb.filter.items, fb.currentFilterItem)

	return fb.filter
}

func sanitizeColors(color Color, colors ...Color) []Color {
	allColors := append([]Color{color}, colors...)
	allColors = slices.DeleteFunc(
		allColors,
		func(c Color) bool {
			return !c.IsValid()
		})
	slices.Sort(allColors)
	allColors = slices.Compact(allColors)
	allColors = slices.Clip(allColors)

	return allColors
}

func sanitizeSizes(size Size, sizes ...Size) []Size {
	allSizes := append([]Size{size}, sizes...)
	allSizes = slices.DeleteFunc(
		allSizes,
		func(s Size) bool {
			return !s.IsValid()
		})
	slices.Sort(allSizes)
	allSizes = slices.Compact(allSizes)
	allSizes = slices.Clip(allSizes)

	return allSizes
}
