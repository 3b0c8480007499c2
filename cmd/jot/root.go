package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	storePath string
	versioned bool

	// fileConfig is loaded once in the root PersistentPreRun.
	fileConfig platform.FileConfig
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "A local-first note store",
	Long: `jot keeps short notes tagged with an importance level in a single
JSON blob on disk. Every change rewrites the whole collection atomically,
so the blob is never observable in a partial state.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		cfg, err := platform.LoadConfig(platform.DefaultConfigPath())
		if err != nil {
			// A broken config file should not lock the user out.
			logger.Warn("ignoring config file", "error", err)
		}
		fileConfig = cfg

		if storePath == "" {
			if fileConfig.Store != "" {
				storePath = fileConfig.Store
			} else {
				storePath = jot.DefaultStorePath()
			}
		}
		if !cmd.Flags().Changed("versioned") && fileConfig.Versioned {
			versioned = true
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// openService wires the service for the resolved store path.
func openService(opts ...jot.Option) (*core.Service, error) {
	base := []jot.Option{
		jot.WithVersioning(versioned),
		jot.WithLogger(slog.Default()),
	}
	return jot.New(storePath, append(base, opts...)...)
}

// defaultImportance resolves the importance applied when the user passes none.
func defaultImportance() core.Importance {
	if fileConfig.DefaultImportance != "" {
		return core.Importance(fileConfig.DefaultImportance)
	}
	return ""
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to the notes blob or its directory (default ~/.jot/notes.json)")
	rootCmd.PersistentFlags().BoolVar(&versioned, "versioned", false, "Keep a local git history of the blob")
}
