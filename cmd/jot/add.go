package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/git"
	"github.com/spf13/cobra"
)

var (
	addTitle      string
	addContent    string
	addImportance string
	changeReason  string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Long:  `Create a new note with a title, optional content and an importance level.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService()
		if err != nil {
			fatal("Failed to open store", err)
		}

		importance := core.Importance(addImportance)
		if importance == "" {
			importance = defaultImportance()
		}

		ctx := context.Background()
		if changeReason != "" {
			ctx = context.WithValue(ctx, core.ChangeReasonKey, git.AppendFooter(changeReason))
		}

		note, err := service.Submit(ctx, core.Draft{
			Title:      addTitle,
			Content:    addContent,
			Importance: importance,
		})
		if err != nil {
			var verr *core.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(os.Stderr, "Validation failed: %v\n", verr)
				os.Exit(1)
			}
			fatal("Failed to save note", err)
		}

		fmt.Printf("Note created: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addTitle, "title", "", "Note title (required, must not be blank)")
	addCmd.Flags().StringVar(&addContent, "content", "", "Note content")
	addCmd.Flags().StringVar(&addImportance, "importance", "", "Importance level (low, medium, high)")
	addCmd.Flags().StringVarP(&changeReason, "message", "m", "", "Change reason recorded in history (versioned stores)")
	addCmd.MarkFlagRequired("title")
}
