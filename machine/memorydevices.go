package machine

// MemoryPrinter captures printed documents in memory.
type MemoryPrinter struct {
	printed []Document
}

// Print records the document.
func (p *MemoryPrinter) Print(document Document) error {
	p.printed = append(p.printed, document)
	return nil
}

// Printed returns the documents printed so far.
func (p *MemoryPrinter) Printed() []Document {
	return p.printed
}

// MemoryScanner captures scanned documents in memory.
type MemoryScanner struct {
	scanned []Document
}

// Scan records the document.
func (s *MemoryScanner) Scan(document Document) error {
	s.scanned = append(s.scanned, document)
	return nil
}

// Scanned returns the documents scanned so far.
func (s *MemoryScanner) Scanned() []Document {
	return s.scanned
}

// MemoryFax captures sent documents in memory.
type MemoryFax struct {
	sent []Document
}

// Send records the document.
func (f *MemoryFax) Send(document Document) error {
	f.sent = append(f.sent, document)
	return nil
}

// Sent returns the documents sent so far.
func (f *MemoryFax) Sent() []Document {
	return f.sent
}

// Ensure the memory devices implement the capability interfaces.
var (
	_ Printer = (*MemoryPrinter)(nil)
	_ Scanner = (*MemoryScanner)(nil)
	_ Fax     = (*MemoryFax)(nil)
)
