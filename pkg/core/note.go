package core

import (
	"sort"
	"time"
)

// Importance classifies how urgent a note is.
type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

// IsValid reports whether the importance is one of the known levels.
func (i Importance) IsValid() bool {
	switch i {
	case ImportanceLow, ImportanceMedium, ImportanceHigh:
		return true
	}
	return false
}

// Note is the central entity of the domain.
// ID is assigned once at creation and never reassigned; CreatedAt is
// immutable across edits. The store treats the remaining fields as opaque.
type Note struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Importance Importance `json:"importance"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// SortByCreatedAt orders notes for display: most recent first.
// The sort is stable, so notes sharing a timestamp keep their stored order.
func SortByCreatedAt(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
}
