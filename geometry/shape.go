// Package geometry provides substitutable two-dimensional shapes.
//
// Every Resizable implementation keeps its own invariants when resized
// through the interface: a Rectangle changes one dimension at a time, while
// a Square keeps width and height equal no matter which of the two setters
// is called. Callers working against Resizable can therefore rely on
// Width() and Height() reflecting what the shape guarantees, not what the
// caller last wrote.
package geometry

import "errors"

// ErrNegativeDimension occurs when a shape is constructed or resized with a negative dimension.
var ErrNegativeDimension = errors.New("shape dimension must not be negative")

// Shape is anything with a computable area.
type Shape interface {
	Area() float64
}

// Resizable is a shape whose dimensions can be read and changed.
type Resizable interface {
	Shape
	Width() float64
	Height() float64
	SetWidth(width float64) error
	SetHeight(height float64) error
}
