package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/jot"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream changes made to the store by other processes",
	Long: `Watch observes the notes blob and prints one line per note created,
modified or deleted outside this process. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService(jot.WithMustExist(true))
		if err != nil {
			fatal("Failed to open store", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Prime the snapshot so the first external change diffs cleanly.
		if _, err := service.List(ctx); err != nil {
			fatal("Failed to load notes", err)
		}

		events, err := service.Watch(ctx)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Fprintln(os.Stderr, "Watching for changes... (Ctrl-C to stop)")
		for event := range events {
			ts := time.Unix(event.Timestamp, 0).Format("15:04:05")
			fmt.Printf("%s %s %s\n", ts, event.Type, event.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
