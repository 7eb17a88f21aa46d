package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidkit/solidkit-go/machine"
)

func Test_BuildMultiFunctionDevice_DelegatesEachCapability(t *testing.T) {
	printer := &machine.MemoryPrinter{}
	scanner := &machine.MemoryScanner{}
	fax := &machine.MemoryFax{}

	device, err := machine.BuildMultiFunctionDevice(printer, scanner, fax)
	assert.NoError(t, err)

	document := machine.Document{Content: "quarterly report"}

	assert.NoError(t, device.Print(document))
	assert.NoError(t, device.Scan(document))
	assert.NoError(t, device.Send(document))

	assert.Equal(t, []machine.Document{document}, printer.Printed())
	assert.Equal(t, []machine.Document{document}, scanner.Scanned())
	assert.Equal(t, []machine.Document{document}, fax.Sent())
}

func Test_BuildMultiFunctionDevice_NilOperands(t *testing.T) {
	printer := &machine.MemoryPrinter{}
	scanner := &machine.MemoryScanner{}
	fax := &machine.MemoryFax{}

	tests := []struct {
		name        string
		printer     machine.Printer
		scanner     machine.Scanner
		fax         machine.Fax
		expectedErr error
	}{
		{
			name:        "nil_printer",
			printer:     nil,
			scanner:     scanner,
			fax:         fax,
			expectedErr: machine.ErrNilPrinter,
		},
		{
			name:        "nil_scanner",
			printer:     printer,
			scanner:     nil,
			fax:         fax,
			expectedErr: machine.ErrNilScanner,
		},
		{
			name:        "nil_fax",
			printer:     printer,
			scanner:     scanner,
			fax:         nil,
			expectedErr: machine.ErrNilFax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := machine.BuildMultiFunctionDevice(tt.printer, tt.scanner, tt.fax)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_BuildPhotocopier(t *testing.T) {
	printer := &machine.MemoryPrinter{}
	scanner := &machine.MemoryScanner{}

	photocopier, err := machine.BuildPhotocopier(printer, scanner)
	assert.NoError(t, err)

	document := machine.Document{Content: "passport"}

	assert.NoError(t, photocopier.Print(document))
	assert.NoError(t, photocopier.Scan(document))

	assert.Equal(t, []machine.Document{document}, printer.Printed())
	assert.Equal(t, []machine.Document{document}, scanner.Scanned())
}

func Test_BuildPhotocopier_NilOperands(t *testing.T) {
	_, printerErr := machine.BuildPhotocopier(nil, &machine.MemoryScanner{})
	_, scannerErr := machine.BuildPhotocopier(&machine.MemoryPrinter{}, nil)

	assert.ErrorIs(t, printerErr, machine.ErrNilPrinter)
	assert.ErrorIs(t, scannerErr, machine.ErrNilScanner)
}

func Test_OldFashionedPrinter_OnlyPrints(t *testing.T) {
	printer := &machine.MemoryPrinter{}

	oldFashioned, err := machine.BuildOldFashionedPrinter(printer)
	assert.NoError(t, err)

	document := machine.Document{Content: "love letter"}

	assert.NoError(t, oldFashioned.Print(document))
	assert.ErrorIs(t, oldFashioned.Scan(document), machine.ErrCapabilityNotSupported)
	assert.ErrorIs(t, oldFashioned.Send(document), machine.ErrCapabilityNotSupported)

	assert.Equal(t, []machine.Document{document}, printer.Printed())
}

func Test_BuildOldFashionedPrinter_NilPrinter(t *testing.T) {
	_, err := machine.BuildOldFashionedPrinter(nil)

	assert.ErrorIs(t, err, machine.ErrNilPrinter)
}
