package main

import (
	"context"
	"fmt"

	"github.com/aretw0/jot"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the change log of a versioned store",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService(jot.WithMustExist(true))
		if err != nil {
			fatal("Failed to open store", err)
		}

		log, err := service.History(context.Background(), historyLimit)
		if err != nil {
			fatal("Failed to read history", err)
		}

		if log == "" {
			fmt.Println("No history yet.")
			return
		}
		fmt.Println(log)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of entries to show")
}
