// Package jot is the Composition Root for the jot application.
//
// It connects the core business logic (Domain Layer) with the infrastructure
// adapters (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// jot is a local-first note store. The whole collection lives in a single
// JSON blob on disk; every mutation is a read-modify-write of the entire
// collection, replaced atomically so no reader ever observes a partial
// state. The core is agnostic to storage, allowing for future adapters
// (e.g., SQLite, S3) behind core.Store.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Atomic Writes**: The blob is replaced via temp file + rename.
//   - **Versioned Blob**: A schema version tag gives future migrations a defined path.
//   - **Optional History**: The blob can be committed to a local git repository on every change.
//   - **Reactivity**: External changes to the blob surface as per-note events via Watch.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := jot.New("~/.jot", jot.WithLogger(logger))
//
//	// Create a note
//	note, err := svc.Submit(ctx, core.Draft{Title: "Groceries", Content: "Milk, eggs"})
package jot
