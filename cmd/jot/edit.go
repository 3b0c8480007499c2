package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/git"
	"github.com/spf13/cobra"
)

var (
	editTitle      string
	editContent    string
	editImportance string
	editReason     string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an existing note",
	Long: `Edit replaces the title, content or importance of an existing note.
Fields not passed as flags keep their current values. The note's identity
and creation time never change.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		service, err := openService(jot.WithMustExist(true))
		if err != nil {
			fatal("Failed to open store", err)
		}

		ctx := context.Background()

		existing, err := service.Get(ctx, id)
		if err != nil {
			fatal("Failed to load note", err)
		}

		draft := core.Draft{
			ID:         existing.ID,
			Title:      existing.Title,
			Content:    existing.Content,
			Importance: existing.Importance,
		}
		if cmd.Flags().Changed("title") {
			draft.Title = editTitle
		}
		if cmd.Flags().Changed("content") {
			draft.Content = editContent
		}
		if cmd.Flags().Changed("importance") {
			draft.Importance = core.Importance(editImportance)
		}

		if editReason != "" {
			ctx = context.WithValue(ctx, core.ChangeReasonKey, git.AppendFooter(editReason))
		}

		note, err := service.Submit(ctx, draft)
		if err != nil {
			var verr *core.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(os.Stderr, "Validation failed: %v\n", verr)
				os.Exit(1)
			}
			fatal("Failed to save note", err)
		}

		fmt.Printf("Note updated: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")
	editCmd.Flags().StringVar(&editImportance, "importance", "", "New importance level (low, medium, high)")
	editCmd.Flags().StringVarP(&editReason, "message", "m", "", "Change reason recorded in history (versioned stores)")
}
