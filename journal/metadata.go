package journal

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// ErrMappingToEntryMetadataFailed is returned when metadata conversion fails.
var ErrMappingToEntryMetadataFailed = errors.New("mapping to entry metadata failed")

// MessageID represents a unique message identifier.
type MessageID = string

// CausationID represents the ID of the action that caused this entry.
type CausationID = string

// CorrelationID represents the ID correlating related entries.
type CorrelationID = string

// EntryMetadata contains entry tracking information.
type EntryMetadata struct {
	MessageID     MessageID
	CausationID   CausationID
	CorrelationID CorrelationID
}

// BuildEntryMetadata creates EntryMetadata from UUID values.
func BuildEntryMetadata(messageID uuid.UUID, causationID uuid.UUID, correlationID uuid.UUID) EntryMetadata {
	return EntryMetadata{
		MessageID:     messageID.String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

// MarshalJSON serializes the metadata for storage alongside an entry.
func (m EntryMetadata) MarshalJSON() ([]byte, error) {
	type plain EntryMetadata

	return jsoniter.ConfigFastest.Marshal(plain(m))
}

// EntryMetadataFrom extracts EntryMetadata from an Entry.
func EntryMetadataFrom(entry Entry) (EntryMetadata, error) {
	metadata := new(EntryMetadata)

	err := jsoniter.ConfigFastest.Unmarshal(entry.MetadataJSON, metadata)
	if err != nil {
		return EntryMetadata{}, errors.Join(ErrMappingToEntryMetadataFailed, err)
	}

	return *metadata, nil
}
