package jot

import (
	"log/slog"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring jot.
type Option = platform.Option

// WithAutoInit enables automatic initialization of the store (creates the
// parent directory, and a git repo when versioned).
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the store blob must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithVersioning enables local git history for the store blob.
func WithVersioning(enabled bool) Option {
	return platform.WithVersioning(enabled)
}

// WithLogger sets the logger for the service and store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// --- Factory ---

// New creates a new jot Service backed by a store at the given path.
// The path may point at the blob itself (*.json) or at its directory.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a store explicitly, without wrapping it in a Service.
func Init(path string, opts ...Option) (core.Store, error) {
	return platform.Init(path, opts...)
}

// --- Utils ---

// DefaultStorePath returns the blob location used when nothing is
// configured: $JOT_STORE if set, otherwise ~/.jot/notes.json.
func DefaultStorePath() string {
	return platform.DefaultStorePath()
}
