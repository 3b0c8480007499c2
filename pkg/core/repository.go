package core

import "context"

// Store defines the contract for the persisted note collection.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (filesystem blob, SQL, S3, etc).
//
// Every mutation is a read-modify-write of the whole collection; there are
// no partial or incremental writes. Implementations that may be called
// concurrently must serialize Upsert/Remove cycles so updates cannot be lost.
type Store interface {
	// LoadAll reads the persisted collection.
	// A store that was never written returns an empty slice, not an error.
	// A blob that exists but cannot be decoded fails with *CorruptStoreError.
	LoadAll(ctx context.Context) ([]Note, error)

	// Upsert replaces the note with a matching ID in place (keeping its
	// stored position), or appends it when absent, then writes the whole
	// collection back atomically. It returns the new collection.
	Upsert(ctx context.Context, n Note) ([]Note, error)

	// Remove filters out any note with the given ID and writes the
	// collection back. Removing an absent ID is a no-op, not an error.
	Remove(ctx context.Context, id string) ([]Note, error)

	// Initialize ensures the underlying storage is ready (e.g. create the
	// parent directory, git init when versioned).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for stores that can observe external
// changes to the persisted collection.
type Watchable interface {
	// Watch emits one event per note created, modified or deleted outside
	// this process. The channel closes when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Versioned defines an interface for stores that keep a local history of
// the blob.
type Versioned interface {
	// History returns the most recent change log entries, newest first.
	History(ctx context.Context, limit int) (string, error)
}

type contextKey string

// ChangeReasonKey is the context key for passing a change reason recorded
// alongside a mutation when the store keeps history.
const ChangeReasonKey contextKey = "change_reason"
