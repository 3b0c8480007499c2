package platform

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

// Init initializes a note store at the given path.
//
// The path may point at the blob itself (anything ending in .json) or at a
// directory, in which case the blob lives at <dir>/notes.json.
// It returns the configured core.Store.
func Init(path string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Check for injected store
	if o.store != nil {
		return o.store, nil
	}

	// 2. Build the blob store
	autoInit, ok := o.config["auto_init"].(bool)
	if !ok {
		autoInit = true
	}
	mustExist, _ := o.config["must_exist"].(bool)
	versioned, _ := o.config["versioned"].(bool)

	store := fs.NewStore(fs.Config{
		Path:      ResolveBlobPath(path),
		AutoInit:  autoInit,
		MustExist: mustExist,
		Versioned: versioned,
		Logger:    o.logger,
	})

	// 3. Run Initialization
	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return store, nil
}

// New creates the domain Service wired to a store at the given path.
func New(path string, opts ...Option) (*core.Service, error) {
	store, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var serviceOpts []core.ServiceOption
	if o.logger != nil {
		serviceOpts = append(serviceOpts, core.WithServiceLogger(o.logger))
	}

	return core.NewService(store, serviceOpts...), nil
}

// ResolveBlobPath maps a user-supplied path to the blob location.
// A path ending in .json is used verbatim; anything else is treated as the
// store directory.
func ResolveBlobPath(path string) string {
	if strings.HasSuffix(path, ".json") {
		return path
	}
	return filepath.Join(path, "notes.json")
}
