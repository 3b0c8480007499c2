package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/git"
	"github.com/spf13/cobra"
)

var (
	deleteYes    bool
	deleteReason string
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long: `Delete permanently removes a note from the store. The action is
destructive, so it asks for confirmation unless --yes is passed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		service, err := openService(jot.WithMustExist(true))
		if err != nil {
			fatal("Failed to open store", err)
		}

		if !deleteYes {
			fmt.Printf("Delete note %s? [y/N]: ", id)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return
			}
		}

		ctx := context.Background()
		if deleteReason != "" {
			ctx = context.WithValue(ctx, core.ChangeReasonKey, git.AppendFooter(deleteReason))
		}

		if _, err := service.Remove(ctx, id); err != nil {
			fatal("Failed to delete note", err)
		}

		fmt.Printf("Note deleted: %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
	deleteCmd.Flags().StringVarP(&deleteReason, "message", "m", "", "Change reason recorded in history (versioned stores)")
}
