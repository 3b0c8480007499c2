package fs

import (
	"strings"
	"testing"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

func TestDecodeBlob(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantIDs []string
		wantErr bool
	}{
		{
			name:    "Versioned Envelope",
			input:   `{"version":1,"notes":[{"id":"a","title":"A","content":"","importance":"low","createdAt":"2026-03-01T12:00:00Z"}]}`,
			wantIDs: []string{"a"},
		},
		{
			name:    "Legacy Bare Array",
			input:   `[{"id":"a","title":"A","content":"","importance":"low","createdAt":"2026-03-01T12:00:00Z"}]`,
			wantIDs: []string{"a"},
		},
		{
			name:    "Legacy Array With Leading Whitespace",
			input:   "\n  []",
			wantIDs: []string{},
		},
		{
			name:    "Empty Envelope",
			input:   `{"version":1,"notes":[]}`,
			wantIDs: []string{},
		},
		{
			name:    "Invalid JSON",
			input:   `{broken`,
			wantErr: true,
		},
		{
			name:    "Missing Version",
			input:   `{"notes":[]}`,
			wantErr: true,
		},
		{
			name:    "Future Version",
			input:   `{"version":2,"notes":[]}`,
			wantErr: true,
		},
		{
			name:    "Invalid Legacy Array",
			input:   `[{"id":]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := decodeBlob([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected decode error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeBlob failed: %v", err)
			}
			if len(notes) != len(tt.wantIDs) {
				t.Fatalf("expected %d notes, got %d", len(tt.wantIDs), len(notes))
			}
			for i, id := range tt.wantIDs {
				if notes[i].ID != id {
					t.Errorf("note %d: got ID %s, want %s", i, notes[i].ID, id)
				}
			}
		})
	}
}

func TestEncodeBlob(t *testing.T) {
	t.Run("Nil Collection Encodes Empty Array", func(t *testing.T) {
		data, err := encodeBlob(nil)
		if err != nil {
			t.Fatalf("encodeBlob failed: %v", err)
		}
		if !strings.Contains(string(data), `"notes": []`) {
			t.Errorf("expected empty notes array, got %s", data)
		}
	})

	t.Run("Round Trip", func(t *testing.T) {
		in := []core.Note{{
			ID:         "a",
			Title:      "A",
			Content:    "body",
			Importance: core.ImportanceHigh,
			CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		}}

		data, err := encodeBlob(in)
		if err != nil {
			t.Fatalf("encodeBlob failed: %v", err)
		}
		out, err := decodeBlob(data)
		if err != nil {
			t.Fatalf("decodeBlob failed: %v", err)
		}
		if len(out) != 1 || out[0] != in[0] {
			t.Errorf("round trip mismatch: %+v != %+v", out, in)
		}
	})
}
