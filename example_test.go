package jot_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/core"
)

// Example_basic demonstrates how to open a store, create a note, and list
// the collection.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "jot-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Initialize the jot service targeting the temporary directory.
	svc, err := jot.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Create a note
	note, err := svc.Submit(ctx, core.Draft{
		Title:      "Groceries",
		Content:    "Milk, eggs",
		Importance: core.ImportanceLow,
	})
	if err != nil {
		log.Fatal(err)
	}

	// 2. Edit it, keeping its identity
	_, err = svc.Submit(ctx, core.Draft{
		ID:         note.ID,
		Title:      "Groceries",
		Content:    "Milk, eggs, bread",
		Importance: core.ImportanceHigh,
	})
	if err != nil {
		log.Fatal(err)
	}

	// 3. List in display order
	notes, err := svc.List(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for _, n := range notes {
		fmt.Printf("%s [%s]\n", n.Title, n.Importance)
	}
	// Output:
	// Groceries [high]
}
