package machine

// MultiFunctionDevice implements MultiFunctionMachine by delegating each
// capability to a dedicated device.
type MultiFunctionDevice struct {
	printer Printer
	scanner Scanner
	fax     Fax
}

// BuildMultiFunctionDevice composes a MultiFunctionDevice from one device per
// capability. All three devices are required.
func BuildMultiFunctionDevice(printer Printer, scanner Scanner, fax Fax) (*MultiFunctionDevice, error) {
	if printer == nil {
		return nil, ErrNilPrinter
	}

	if scanner == nil {
		return nil, ErrNilScanner
	}

	if fax == nil {
		return nil, ErrNilFax
	}

	return &MultiFunctionDevice{printer: printer, scanner: scanner, fax: fax}, nil
}

// Print delegates to the composed printer.
func (d *MultiFunctionDevice) Print(document Document) error {
	return d.printer.Print(document)
}

// Scan delegates to the composed scanner.
func (d *MultiFunctionDevice) Scan(document Document) error {
	return d.scanner.Scan(document)
}

// Send delegates to the composed fax.
func (d *MultiFunctionDevice) Send(document Document) error {
	return d.fax.Send(document)
}

// Ensure MultiFunctionDevice implements MultiFunctionMachine.
var _ MultiFunctionMachine = (*MultiFunctionDevice)(nil)

// Photocopier prints and scans but does not fax.
type Photocopier struct {
	printer Printer
	scanner Scanner
}

// BuildPhotocopier composes a Photocopier from a printer and a scanner.
func BuildPhotocopier(printer Printer, scanner Scanner) (*Photocopier, error) {
	if printer == nil {
		return nil, ErrNilPrinter
	}

	if scanner == nil {
		return nil, ErrNilScanner
	}

	return &Photocopier{printer: printer, scanner: scanner}, nil
}

// Print delegates to the composed printer.
func (p *Photocopier) Print(document Document) error {
	return p.printer.Print(document)
}

// Scan delegates to the composed scanner.
func (p *Photocopier) Scan(document Document) error {
	return p.scanner.Scan(document)
}

// Ensure Photocopier implements Printer and Scanner.
var (
	_ Printer = (*Photocopier)(nil)
	_ Scanner = (*Photocopier)(nil)
)

// OldFashionedPrinter only prints. It still satisfies MultiFunctionMachine
// for callers that insist on one, but scanning and faxing report
// ErrCapabilityNotSupported.
type OldFashionedPrinter struct {
	printer Printer
}

// BuildOldFashionedPrinter wraps a printer into an OldFashionedPrinter.
func BuildOldFashionedPrinter(printer Printer) (*OldFashionedPrinter, error) {
	if printer == nil {
		return nil, ErrNilPrinter
	}

	return &OldFashionedPrinter{printer: printer}, nil
}

// Print delegates to the wrapped printer.
func (p *OldFashionedPrinter) Print(document Document) error {
	return p.printer.Print(document)
}

// Scan reports that scanning is not supported.
func (p *OldFashionedPrinter) Scan(Document) error {
	return ErrCapabilityNotSupported
}

// Send reports that faxing is not supported.
func (p *OldFashionedPrinter) Send(Document) error {
	return ErrCapabilityNotSupported
}

// Ensure OldFashionedPrinter implements MultiFunctionMachine.
var _ MultiFunctionMachine = (*OldFashionedPrinter)(nil)
