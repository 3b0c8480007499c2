package fs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aretw0/jot/pkg/core"
)

// blobVersion is the current schema version of the persisted blob.
const blobVersion = 1

// envelope is the on-disk layout of the blob. The version tag gives future
// field additions a defined migration path.
type envelope struct {
	Version int         `json:"version"`
	Notes   []core.Note `json:"notes"`
}

// decodeBlob parses the persisted blob into the note collection.
//
// Two layouts are accepted: the current versioned envelope, and a legacy
// bare JSON array of notes (rewritten in envelope form on the next write).
// Anything else is a decode failure the caller must report as corruption;
// a decode failure is never flattened into an empty collection.
func decodeBlob(data []byte) ([]core.Note, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		// Legacy layout: bare array, no version tag.
		var notes []core.Note
		if err := json.Unmarshal(data, &notes); err != nil {
			return nil, fmt.Errorf("invalid legacy blob: %w", err)
		}
		return normalize(notes), nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("invalid blob: %w", err)
	}
	if env.Version != blobVersion {
		return nil, fmt.Errorf("unsupported blob version %d", env.Version)
	}
	return normalize(env.Notes), nil
}

// encodeBlob serializes the collection in the current envelope layout.
func encodeBlob(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}
	return json.MarshalIndent(envelope{Version: blobVersion, Notes: notes}, "", "  ")
}

// normalize applies the single defaulting rule of the store boundary:
// an unset importance reads as medium. Everything else passes verbatim.
func normalize(notes []core.Note) []core.Note {
	for i := range notes {
		if notes[i].Importance == "" {
			notes[i].Importance = core.ImportanceMedium
		}
	}
	return notes
}
