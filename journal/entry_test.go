package journal_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/solidkit/solidkit-go/journal"
)

func Test_BuildEntry_ValidInput(t *testing.T) {
	writtenAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	entry, err := journal.BuildEntry("I cried today", writtenAt, []byte(`{"MessageID":"abc"}`))

	assert.NoError(t, err)
	assert.Equal(t, uint(0), entry.Number, "a fresh entry has no number assigned yet")
	assert.Equal(t, "I cried today", entry.Text)
	assert.Equal(t, writtenAt, entry.WrittenAt)
}

func Test_BuildEntry_InvalidInput(t *testing.T) {
	writtenAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		text        string
		metadata    []byte
		expectedErr error
	}{
		{
			name:        "empty_text_is_rejected",
			text:        "",
			metadata:    []byte("{}"),
			expectedErr: journal.ErrEmptyEntryText,
		},
		{
			name:        "invalid_metadata_json_is_rejected",
			text:        "valid text",
			metadata:    []byte("{not json"),
			expectedErr: journal.ErrInvalidMetadataJSON,
		},
		{
			name:        "nil_metadata_is_rejected",
			text:        "valid text",
			metadata:    nil,
			expectedErr: journal.ErrInvalidMetadataJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := journal.BuildEntry(tt.text, writtenAt, tt.metadata)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, journal.Entry{}, entry)
		})
	}
}

func Test_BuildEntryWithEmptyMetadata(t *testing.T) {
	entry, err := journal.BuildEntryWithEmptyMetadata("I ate a bug", time.Now())

	assert.NoError(t, err)
	assert.Equal(t, []byte("{}"), entry.MetadataJSON)
}

func Test_EntryMetadata_RoundTrip(t *testing.T) {
	messageID := uuid.New()
	metadata := journal.BuildEntryMetadata(messageID, messageID, messageID)

	metadataJSON, err := metadata.MarshalJSON()
	assert.NoError(t, err)

	entry, err := journal.BuildEntry("with metadata", time.Now(), metadataJSON)
	assert.NoError(t, err)

	extracted, err := journal.EntryMetadataFrom(entry)
	assert.NoError(t, err)
	assert.Equal(t, metadata, extracted)
}

func Test_EntryMetadataFrom_InvalidJSON(t *testing.T) {
	entry := journal.Entry{MetadataJSON: []byte("not json")}

	_, err := journal.EntryMetadataFrom(entry)

	assert.ErrorIs(t, err, journal.ErrMappingToEntryMetadataFailed)
}
