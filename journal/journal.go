package journal

import (
	"errors"
	"strings"
	"time"
)

// ErrNoEntryAtPosition is returned when a removal targets a position that does not exist.
var ErrNoEntryAtPosition = errors.New("no entry at the given position")

// Journal is an in-memory, append-only list of numbered entries.
//
// Entries are numbered from 1 upwards in the order they were added.
// Removing an entry shifts the positions of the entries after it, but the
// numbers of the remaining entries do not change and removed numbers are
// never reused.
//
// A Journal is not safe for concurrent use.
type Journal struct {
	entries    Entries
	nextNumber EntryNumberUint
}

// New creates an empty Journal.
func New() *Journal {
	return &Journal{}
}

// AddEntry appends a new entry with the given text and returns its number.
// Returns an error if the text is empty.
func (j *Journal) AddEntry(text string) (EntryNumberUint, error) {
	entry, err := BuildEntryWithEmptyMetadata(text, time.Now())
	if err != nil {
		return 0, err
	}

	return j.append(entry), nil
}

// AddBuiltEntry appends an entry constructed with BuildEntry, assigning it the
// next number. Returns the assigned number.
func (j *Journal) AddBuiltEntry(entry Entry) EntryNumberUint {
	return j.append(entry)
}

func (j *Journal) append(entry Entry) EntryNumberUint {
	j.nextNumber++
	entry.Number = j.nextNumber
	j.entries = append(j.entries, entry)

	return entry.Number
}

// RemoveEntryAt removes the entry at the given zero-based position.
// Positions of subsequent entries shift down; their numbers do not change.
func (j *Journal) RemoveEntryAt(position int) error {
	if position < 0 || position >= len(j.entries) {
		return ErrNoEntryAtPosition
	}

	j.entries = append(j.entries[:position], j.entries[position+1:]...)

	return nil
}

// EntryAt returns the entry at the given zero-based position.
func (j *Journal) EntryAt(position int) (Entry, error) {
	if position < 0 || position >= len(j.entries) {
		return Entry{}, ErrNoEntryAtPosition
	}

	return j.entries[position], nil
}

// Entries returns a copy of the journal's entries in order.
func (j *Journal) Entries() Entries {
	entries := make(Entries, len(j.entries))
	copy(entries, j.entries)

	return entries
}

// Count returns the number of entries currently in the journal.
func (j *Journal) Count() int {
	return len(j.entries)
}

// Render returns the newline-joined numbered lines of the journal.
func (j *Journal) Render() string {
	lines := make([]string, 0, len(j.entries))

	for _, entry := range j.entries {
		lines = append(lines, entry.Line())
	}

	return strings.Join(lines, "\n")
}
