package core

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service handles the note-taking workflows on top of a Store: draft
// submission (create or edit), listing for display, and deletion.
// It owns all domain validation; the store below it treats notes as opaque.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger used for debug output.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// WithIDSource overrides the unique ID generator. Intended for tests.
func WithIDSource(newID func() string) ServiceOption {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a new Service.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draft holds the field values collected from the user before submission.
// An empty ID means "create"; a non-empty ID means "edit that note".
type Draft struct {
	ID         string
	Title      string
	Content    string
	Importance Importance
}

// Submit validates a draft and upserts the resulting note.
//
// A trimmed-empty title or an unknown importance is rejected with
// *ValidationError before the store is touched. On create, a fresh unique ID
// and CreatedAt are assigned. On edit, CreatedAt is re-read from the stored
// note so callers cannot clobber it. The submitted note is returned; on
// store failure the error propagates and the caller's draft stays intact
// for retry.
func (s *Service) Submit(ctx context.Context, d Draft) (Note, error) {
	if strings.TrimSpace(d.Title) == "" {
		return Note{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	importance := d.Importance
	if importance == "" {
		importance = ImportanceMedium
	}
	if !importance.IsValid() {
		return Note{}, &ValidationError{Field: "importance", Reason: "must be low, medium or high"}
	}

	n := Note{
		ID:         d.ID,
		Title:      d.Title,
		Content:    d.Content,
		Importance: importance,
	}

	if n.ID == "" {
		n.ID = s.newID()
		n.CreatedAt = s.now()
	} else {
		existing, err := s.Get(ctx, n.ID)
		switch {
		case err == nil:
			n.CreatedAt = existing.CreatedAt
		case errors.As(err, new(*NotFoundError)):
			// Caller-chosen ID for a note that does not exist yet.
			n.CreatedAt = s.now()
		default:
			return Note{}, err
		}
	}

	if _, err := s.store.Upsert(ctx, n); err != nil {
		return Note{}, err
	}

	if s.logger != nil {
		s.logger.Debug("note submitted", "id", n.ID, "importance", n.Importance)
	}
	return n, nil
}

// List returns the collection in display order: CreatedAt descending,
// ties kept in stored order. Read and corrupt-store errors propagate;
// they are never flattened into an empty list.
func (s *Service) List(ctx context.Context) ([]Note, error) {
	notes, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	SortByCreatedAt(notes)
	return notes, nil
}

// Get retrieves a single note by ID, for edit prefill or display.
func (s *Service) Get(ctx context.Context, id string) (Note, error) {
	notes, err := s.store.LoadAll(ctx)
	if err != nil {
		return Note{}, err
	}
	for _, n := range notes {
		if n.ID == id {
			return n, nil
		}
	}
	return Note{}, &NotFoundError{ID: id}
}

// Remove deletes a note by ID and returns the new collection.
// Removing an absent ID is a no-op. Confirmation of the destructive action
// is the caller's responsibility.
func (s *Service) Remove(ctx context.Context, id string) ([]Note, error) {
	notes, err := s.store.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.Debug("note removed", "id", id)
	}
	return notes, nil
}

// Watch observes external changes to the collection if the store supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx)
}

// History returns the store's change log if it keeps one.
func (s *Service) History(ctx context.Context, limit int) (string, error) {
	v, ok := s.store.(Versioned)
	if !ok {
		return "", errors.New("store does not keep history")
	}
	return v.History(ctx, limit)
}
