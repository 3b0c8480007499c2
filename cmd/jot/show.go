package main

import (
	"context"
	"fmt"

	"github.com/aretw0/jot"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService(jot.WithMustExist(true))
		if err != nil {
			fatal("Failed to open store", err)
		}

		note, err := service.Get(context.Background(), args[0])
		if err != nil {
			fatal("Failed to load note", err)
		}

		fmt.Printf("ID:         %s\n", note.ID)
		fmt.Printf("Title:      %s\n", note.Title)
		fmt.Printf("Importance: %s\n", note.Importance)
		fmt.Printf("Created:    %s\n", note.CreatedAt.Format("2006-01-02 15:04:05"))
		if note.Content != "" {
			fmt.Printf("\n%s\n", note.Content)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
