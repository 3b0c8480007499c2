package tests_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/core"
)

// TestNoteLifecycle walks the full create/edit/sort/delete scenario through
// the public facade.
func TestNoteLifecycle(t *testing.T) {
	tmpDir := t.TempDir()

	service, err := jot.New(tmpDir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	ctx := context.Background()

	// Create note A
	a, err := service.Submit(ctx, core.Draft{
		Title:      "Groceries",
		Content:    "Milk, eggs",
		Importance: core.ImportanceLow,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	notes, err := service.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != a.ID {
		t.Fatalf("expected [A], got %+v", notes)
	}

	// Edit A's importance, identity preserved
	edited, err := service.Submit(ctx, core.Draft{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		Importance: core.ImportanceHigh,
	})
	if err != nil {
		t.Fatalf("edit Submit failed: %v", err)
	}
	if !edited.CreatedAt.Equal(a.CreatedAt) {
		t.Errorf("CreatedAt changed on edit: %v != %v", edited.CreatedAt, a.CreatedAt)
	}

	notes, err = service.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Importance != core.ImportanceHigh {
		t.Fatalf("expected one high-importance note, got %+v", notes)
	}

	// B created after A sorts before A
	time.Sleep(10 * time.Millisecond)
	b, err := service.Submit(ctx, core.Draft{Title: "Dentist"})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	notes, err = service.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(notes) != 2 || notes[0].ID != b.ID || notes[1].ID != a.ID {
		t.Fatalf("expected [B, A], got %+v", notes)
	}

	// Delete A, only B remains
	if _, err := service.Remove(ctx, a.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	notes, err = service.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != b.ID {
		t.Fatalf("expected [B], got %+v", notes)
	}
}

// TestCollectionSurvivesReopen verifies the blob is the durability point:
// a fresh service over the same path sees the same collection.
func TestCollectionSurvivesReopen(t *testing.T) {
	tmpDir := t.TempDir()
	ctx := context.Background()

	first, err := jot.New(tmpDir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	note, err := first.Submit(ctx, core.Draft{Title: "Persist me", Importance: core.ImportanceHigh})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	second, err := jot.New(tmpDir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, err := second.Get(ctx, note.ID)
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got.Title != "Persist me" || got.Importance != core.ImportanceHigh || !got.CreatedAt.Equal(note.CreatedAt) {
		t.Errorf("note not preserved across reopen: %+v", got)
	}
}

// TestCorruptBlobSurfaces verifies corruption is reported, never shadowed by
// an empty list.
func TestCorruptBlobSurfaces(t *testing.T) {
	tmpDir := t.TempDir()

	service, err := jot.New(tmpDir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	blobPath := filepath.Join(tmpDir, "notes.json")
	if err := os.WriteFile(blobPath, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err = service.List(context.Background())
	var cerr *core.CorruptStoreError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CorruptStoreError, got %v", err)
	}
}
