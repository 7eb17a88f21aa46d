package geometry

// Rectangle is a resizable shape with independently settable width and height.
type Rectangle struct {
	width  float64
	height float64
}

// BuildRectangle creates a Rectangle, rejecting negative dimensions.
func BuildRectangle(width float64, height float64) (*Rectangle, error) {
	if width < 0 || height < 0 {
		return nil, ErrNegativeDimension
	}

	return &Rectangle{width: width, height: height}, nil
}

// Width returns the current width.
func (r *Rectangle) Width() float64 {
	return r.width
}

// Height returns the current height.
func (r *Rectangle) Height() float64 {
	return r.height
}

// SetWidth changes the width, leaving the height untouched.
func (r *Rectangle) SetWidth(width float64) error {
	if width < 0 {
		return ErrNegativeDimension
	}

	r.width = width

	return nil
}

// SetHeight changes the height, leaving the width untouched.
func (r *Rectangle) SetHeight(height float64) error {
	if height < 0 {
		return ErrNegativeDimension
	}

	r.height = height

	return nil
}

// Area returns width times height.
func (r *Rectangle) Area() float64 {
	return r.width * r.height
}

// Ensure Rectangle implements Resizable.
var _ Resizable = (*Rectangle)(nil)
