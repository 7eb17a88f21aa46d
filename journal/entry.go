package journal

import (
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrEmptyEntryText is returned when an entry is built without text.
	ErrEmptyEntryText = errors.New("entry text must not be empty")

	// ErrInvalidMetadataJSON is returned when entry metadata is not valid JSON.
	ErrInvalidMetadataJSON = errors.New("metadata json is not valid")
)

// Entries is an alias type for a slice of Entry.
type Entries = []Entry

// Entry is one numbered line of a journal.
//
// While its properties are exported, it should only be constructed with the
// supplied factory methods:
//   - BuildEntry
//   - BuildEntryWithEmptyMetadata
//
// The Number is assigned by the Journal or storage engine the entry is
// appended to; a freshly built Entry carries number zero.
type Entry struct {
	Number       EntryNumberUint
	Text         string
	WrittenAt    time.Time
	MetadataJSON []byte
}

// BuildEntry is a factory method for Entry.
//
// Returns an error if the text is empty or metadataJSON is not valid JSON.
func BuildEntry(text string, writtenAt time.Time, metadataJSON []byte) (Entry, error) {
	if text == "" {
		return Entry{}, ErrEmptyEntryText
	}

	if !jsoniter.ConfigFastest.Valid(metadataJSON) {
		return Entry{}, ErrInvalidMetadataJSON
	}

	return Entry{
		Text:         text,
		WrittenAt:    writtenAt,
		MetadataJSON: metadataJSON,
	}, nil
}

// BuildEntryWithEmptyMetadata is a factory method for Entry.
//
// It populates the Entry with the given input and creates valid empty JSON
// for MetadataJSON. Returns an error if the text is empty.
func BuildEntryWithEmptyMetadata(text string, writtenAt time.Time) (Entry, error) {
	return BuildEntry(text, writtenAt, []byte("{}"))
}

// Line renders the entry as it appears in a journal, e.g. "1: I cried today".
func (e Entry) Line() string {
	return fmt.Sprintf("%d: %s", e.Number, e.Text)
}
