package fs

import (
	"testing"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

func TestSnapshotDiff(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := core.Note{ID: "a", Title: "A", CreatedAt: base}
	b := core.Note{ID: "b", Title: "B", CreatedAt: base}

	t.Run("First Observation Emits Nothing", func(t *testing.T) {
		snap := newSnapshot()
		events := snap.DiffAndReplace([]core.Note{a, b})
		if len(events) != 0 {
			t.Errorf("expected no events on first observation, got %v", events)
		}
	})

	t.Run("Create Modify Delete", func(t *testing.T) {
		snap := newSnapshot()
		snap.Replace([]core.Note{a, b})

		modified := a
		modified.Title = "A edited"
		c := core.Note{ID: "c", Title: "C", CreatedAt: base}

		events := snap.DiffAndReplace([]core.Note{modified, c})

		byID := make(map[string]core.EventType, len(events))
		for _, e := range events {
			byID[e.ID] = e.Type
		}
		if byID["a"] != core.EventModify {
			t.Errorf("expected MODIFY for a, got %v", byID["a"])
		}
		if byID["b"] != core.EventDelete {
			t.Errorf("expected DELETE for b, got %v", byID["b"])
		}
		if byID["c"] != core.EventCreate {
			t.Errorf("expected CREATE for c, got %v", byID["c"])
		}
	})

	t.Run("Unchanged Collection Emits Nothing", func(t *testing.T) {
		snap := newSnapshot()
		snap.Replace([]core.Note{a})

		if events := snap.DiffAndReplace([]core.Note{a}); len(events) != 0 {
			t.Errorf("expected no events, got %v", events)
		}
	})
}
