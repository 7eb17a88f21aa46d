// Package machine models office devices through small capability interfaces.
//
// Print, scan, and fax are separate interfaces so a device only promises the
// capabilities it actually has. Devices with several capabilities compose the
// single-capability interfaces or delegate to one device per capability; a
// device lacking a capability reports ErrCapabilityNotSupported instead of
// pretending.
package machine

import "errors"

var (
	// ErrNilPrinter occurs when a multi-function device is composed with a nil printer.
	ErrNilPrinter = errors.New("printer must not be nil")

	// ErrNilScanner occurs when a multi-function device is composed with a nil scanner.
	ErrNilScanner = errors.New("scanner must not be nil")

	// ErrNilFax occurs when a multi-function device is composed with a nil fax.
	ErrNilFax = errors.New("fax must not be nil")

	// ErrCapabilityNotSupported occurs when a device is asked for a capability it does not have.
	ErrCapabilityNotSupported = errors.New("device does not support this capability")
)

// Document is the content passed between devices.
type Document struct {
	Content string
}

// Printer can print a document.
type Printer interface {
	Print(document Document) error
}

// Scanner can scan a document.
type Scanner interface {
	Scan(document Document) error
}

// Fax can fax a document.
type Fax interface {
	Send(document Document) error
}

// MultiFunctionMachine is the union of all three capabilities.
type MultiFunctionMachine interface {
	Printer
	Scanner
	Fax
}
