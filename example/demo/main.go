// A runnable walkthrough of the library: it keeps a journal and saves it to a
// file, filters a product catalog, resizes shapes through a common interface,
// and prints the journal through an office machine.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/solidkit/solidkit-go/catalog"
	"github.com/solidkit/solidkit-go/geometry"
	"github.com/solidkit/solidkit-go/journal"
	"github.com/solidkit/solidkit-go/journal/filestore"
	"github.com/solidkit/solidkit-go/machine"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("demo failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	j, renderErr := buildJournal(logger)
	if renderErr != nil {
		return renderErr
	}

	if err := saveJournal(logger, j); err != nil {
		return err
	}

	if err := filterCatalog(logger); err != nil {
		return err
	}

	if err := resizeShapes(logger); err != nil {
		return err
	}

	return printJournal(logger, j)
}

func buildJournal(logger *slog.Logger) (*journal.Journal, error) {
	j := journal.New()

	for _, text := range []string{"I cried today", "I ate a bug"} {
		number, err := j.AddEntry(text)
		if err != nil {
			return nil, err
		}

		logger.Info("journal entry added", "entry_number", number, "text", text)
	}

	if err := j.RemoveEntryAt(0); err != nil {
		return nil, err
	}

	logger.Info("journal after removal", "rendered", j.Render())

	return j, nil
}

func saveJournal(logger *slog.Logger, j *journal.Journal) error {
	path := filepath.Join(os.TempDir(), "solidkit-journal.txt")

	if err := filestore.Save(path, j, filestore.WithOverwrite()); err != nil {
		return err
	}

	logger.Info("journal saved", "path", path)

	return nil
}

func filterCatalog(logger *slog.Logger) error {
	store := catalog.NewMemoryStore()

	fixtures := []struct {
		name  string
		color catalog.Color
		size  catalog.Size
	}{
		{name: "Apple", color: catalog.ColorGreen, size: catalog.SizeSmall},
		{name: "Tree", color: catalog.ColorGreen, size: catalog.SizeLarge},
		{name: "House", color: catalog.ColorBlue, size: catalog.SizeLarge},
	}

	for _, fixture := range fixtures {
		product, err := catalog.BuildProduct(fixture.name, fixture.color, fixture.size)
		if err != nil {
			return err
		}

		store.Add(product)
	}

	filter := catalog.BuildProductFilter().
		Matching().
		AnyColorOf(catalog.ColorGreen).
		AndAnySizeOf(catalog.SizeLarge).
		Finalize()

	for _, product := range store.Query(filter) {
		logger.Info("large green product", "name", product.Name())
	}

	return nil
}

func resizeShapes(logger *slog.Logger) error {
	rectangle, err := geometry.BuildRectangle(3, 4)
	if err != nil {
		return err
	}

	square, err := geometry.BuildSquare(3)
	if err != nil {
		return err
	}

	for _, shape := range []geometry.Resizable{rectangle, square} {
		if resizeErr := shape.SetWidth(5); resizeErr != nil {
			return resizeErr
		}

		logger.Info("shape resized",
			"width", shape.Width(),
			"height", shape.Height(),
			"area", shape.Area())
	}

	return nil
}

func printJournal(logger *slog.Logger, j *journal.Journal) error {
	printer := &machine.MemoryPrinter{}
	scanner := &machine.MemoryScanner{}

	photocopier, err := machine.BuildPhotocopier(printer, scanner)
	if err != nil {
		return err
	}

	if printErr := photocopier.Print(machine.Document{Content: j.Render()}); printErr != nil {
		return printErr
	}

	oldFashioned, err := machine.BuildOldFashionedPrinter(printer)
	if err != nil {
		return err
	}

	scanErr := oldFashioned.Scan(machine.Document{Content: "anything"})
	logger.Info("old fashioned printer refused to scan", "error", scanErr.Error())

	logger.Info("journal printed", "copies", len(printer.Printed()))

	return nil
}
