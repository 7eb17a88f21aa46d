package catalog

import (
	"github.com/solidkit/solidkit-go/specification"
)

// ColorIs builds a specification satisfied by products of the given color.
func ColorIs(color Color) specification.Specification[Product] {
	return specification.Func[Product](func(p Product) bool {
		return p.Color() == color
	})
}

// SizeIs builds a specification satisfied by products of the given size.
func SizeIs(size Size) specification.Specification[Product] {
	return specification.Func[Product](func(p Product) bool {
		return p.Size() == size
	})
}

// NameIs builds a specification satisfied by products with the given name.
func NameIs(name string) specification.Specification[Product] {
	return specification.Func[Product](func(p Product) bool {
		return p.Name() == name
	})
}
