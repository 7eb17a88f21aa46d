package catalog

import (
	"errors"
	"slices"
)

var (
	// ErrEmptyProductName is returned when a product is built without a name.
	ErrEmptyProductName = errors.New("product name must not be empty")

	// ErrInvalidColor is returned when a color outside the known enumeration is supplied.
	ErrInvalidColor = errors.New("color is not a known color")

	// ErrInvalidSize is returned when a size outside the known enumeration is supplied.
	ErrInvalidSize = errors.New("size is not a known size")
)

// Color enumerates the product colors.
type Color string

// The known product colors.
const (
	ColorRed   Color = "red"
	ColorGreen Color = "green"
	ColorBlue  Color = "blue"
)

// IsValid reports whether the color belongs to the known enumeration.
func (c Color) IsValid() bool {
	return slices.Contains(Colors(), c)
}

// String returns the color as a plain string.
func (c Color) String() string {
	return string(c)
}

// Colors returns all known colors.
func Colors() []Color {
	return []Color{ColorBlue, ColorGreen, ColorRed}
}

// ParseColor converts a string into a Color, failing for unknown values.
func ParseColor(value string) (Color, error) {
	color := Color(value)
	if !color.IsValid() {
		return "", ErrInvalidColor
	}

	return color, nil
}

// Size enumerates the product sizes.
type Size string

// The known product sizes.
const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeYuge   Size = "yuge"
)

// IsValid reports whether the size belongs to the known enumeration.
func (s Size) IsValid() bool {
	return slices.Contains(Sizes(), s)
}

// String returns the size as a plain string.
func (s Size) String() string {
	return string(s)
}

// Sizes returns all known sizes.
func Sizes() []Size {
	return []Size{SizeLarge, SizeMedium, SizeSmall, SizeYuge}
}

// ParseSize converts a string into a Size, failing for unknown values.
func ParseSize(value string) (Size, error) {
	size := Size(value)
	if !size.IsValid() {
		return "", ErrInvalidSize
	}

	return size, nil
}

// Products is an alias type for a slice of Product.
type Products = []Product

// Product is an immutable catalog item.
//
// It should only be constructed with the supplied factory method BuildProduct,
// which validates all required attributes.
type Product struct {
	name  string
	color Color
	size  Size
}

// BuildProduct is a factory method for Product.
//
// Returns an error if the name is empty or the color or size is not part of
// the known enumerations.
func BuildProduct(name string, color Color, size Size) (Product, error) {
	if name == "" {
		return Product{}, ErrEmptyProductName
	}

	if !color.IsValid() {
		return Product{}, ErrInvalidColor
	}

	if !size.IsValid() {
		return Product{}, ErrInvalidSize
	}

	return Product{
		name:  name,
		color: color,
		size:  size,
	}, nil
}

// Name returns the product name.
func (p Product) Name() string {
	return p.name
}

// Color returns the product color.
func (p Product) Color() Color {
	return p.color
}

// Size returns the product size.
func (p Product) Size() Size {
	return p.size
}
