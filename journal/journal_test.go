package journal_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidkit/solidkit-go/journal"
)

func Test_Journal_AddEntry_NumbersSequentially(t *testing.T) {
	j := journal.New()

	for i := 1; i <= 5; i++ {
		number, err := j.AddEntry(fmt.Sprintf("entry %d", i))

		assert.NoError(t, err)
		assert.Equal(t, uint(i), number)
	}

	assert.Equal(t, 5, j.Count())

	entries := j.Entries()
	for i, entry := range entries {
		assert.Equal(t, uint(i+1), entry.Number)
		assert.Equal(t, fmt.Sprintf("%d: entry %d", i+1, i+1), entry.Line())
	}
}

func Test_Journal_AddEntry_EmptyTextIsRejected(t *testing.T) {
	j := journal.New()

	number, err := j.AddEntry("")

	assert.ErrorIs(t, err, journal.ErrEmptyEntryText)
	assert.Equal(t, uint(0), number)
	assert.Equal(t, 0, j.Count())
}

func Test_Journal_RemoveEntryAt_ShiftsPositionsButNotNumbers(t *testing.T) {
	j := journal.New()

	_, _ = j.AddEntry("I cried today")
	_, _ = j.AddEntry("I ate a bug")
	_, _ = j.AddEntry("I laughed")

	err := j.RemoveEntryAt(1)

	assert.NoError(t, err)
	assert.Equal(t, 2, j.Count())

	// The third entry moved to position 1, keeping its original number.
	moved, err := j.EntryAt(1)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), moved.Number)
	assert.Equal(t, "3: I laughed", moved.Line())
}

func Test_Journal_RemoveEntryAt_InvalidPositions(t *testing.T) {
	j := journal.New()
	_, _ = j.AddEntry("only entry")

	tests := []struct {
		name     string
		position int
	}{
		{name: "negative_position", position: -1},
		{name: "position_past_the_end", position: 1},
		{name: "position_far_past_the_end", position: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := j.RemoveEntryAt(tt.position)

			assert.ErrorIs(t, err, journal.ErrNoEntryAtPosition)
			assert.Equal(t, 1, j.Count())
		})
	}
}

func Test_Journal_NumbersAreNeverReused(t *testing.T) {
	j := journal.New()

	_, _ = j.AddEntry("first")
	_, _ = j.AddEntry("second")

	assert.NoError(t, j.RemoveEntryAt(1))

	number, err := j.AddEntry("third")

	assert.NoError(t, err)
	assert.Equal(t, uint(3), number)
	assert.Equal(t, "1: first\n3: third", j.Render())
}

func Test_Journal_Render(t *testing.T) {
	tests := []struct {
		name     string
		texts    []string
		expected string
	}{
		{
			name:     "empty_journal_renders_empty_string",
			texts:    nil,
			expected: "",
		},
		{
			name:     "single_entry",
			texts:    []string{"I cried today"},
			expected: "1: I cried today",
		},
		{
			name:     "multiple_entries_in_order",
			texts:    []string{"I cried today", "I ate a bug"},
			expected: "1: I cried today\n2: I ate a bug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := journal.New()

			for _, text := range tt.texts {
				_, err := j.AddEntry(text)
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.expected, j.Render())
		})
	}
}

func Test_Journal_Entries_ReturnsACopy(t *testing.T) {
	j := journal.New()
	_, _ = j.AddEntry("original")

	entries := j.Entries()
	entries[0].Text = "tampered"

	kept, err := j.EntryAt(0)
	assert.NoError(t, err)
	assert.Equal(t, "original", kept.Text)
}
