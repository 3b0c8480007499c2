package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/jot/pkg/core"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var (
	listJSON         bool
	filterImportance string
	filterTitle      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, most recent first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if filterImportance != "" && !core.Importance(filterImportance).IsValid() {
			fmt.Fprintf(os.Stderr, "Unknown importance: %s (expected low, medium or high)\n", filterImportance)
			os.Exit(1)
		}

		service, err := openService()
		if err != nil {
			fatal("Failed to open store", err)
		}

		notes, err := service.List(context.Background())
		if err != nil {
			fatal("Failed to list notes", err)
		}

		// Filter
		var filtered []core.Note
		for _, note := range notes {
			if filterImportance != "" && note.Importance != core.Importance(filterImportance) {
				continue
			}
			if filterTitle != "" {
				match, err := doublestar.Match(filterTitle, note.Title)
				if err != nil {
					fatal("Invalid title pattern", err)
				}
				if !match {
					continue
				}
			}
			filtered = append(filtered, note)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, note := range filtered {
			fmt.Printf("%s  %-8s %s  %s\n", note.ID, note.Importance, note.CreatedAt.Format("2006-01-02 15:04"), note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterImportance, "importance", "", "Only show notes with this importance level")
	listCmd.Flags().StringVar(&filterTitle, "title", "", "Only show notes whose title matches this glob pattern")
}
