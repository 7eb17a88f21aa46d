package geometry

// Square is a resizable shape that keeps width and height equal.
//
// Setting either dimension sets both, so a Square stays a square under any
// caller that only knows it as a Resizable.
type Square struct {
	side float64
}

// BuildSquare creates a Square, rejecting a negative side length.
func BuildSquare(side float64) (*Square, error) {
	if side < 0 {
		return nil, ErrNegativeDimension
	}

	return &Square{side: side}, nil
}

// Side returns the current side length.
func (s *Square) Side() float64 {
	return s.side
}

// Width returns the side length.
func (s *Square) Width() float64 {
	return s.side
}

// Height returns the side length.
func (s *Square) Height() float64 {
	return s.side
}

// SetWidth changes both dimensions to the given value.
func (s *Square) SetWidth(width float64) error {
	if width < 0 {
		return ErrNegativeDimension
	}

	s.side = width

	return nil
}

// SetHeight changes both dimensions to the given value.
func (s *Square) SetHeight(height float64) error {
	if height < 0 {
		return ErrNegativeDimension
	}

	s.side = height

	return nil
}

// Area returns the side length squared.
func (s *Square) Area() float64 {
	return s.side * s.side
}

// Ensure Square implements Resizable.
var _ Resizable = (*Square)(nil)
