// Package main provides the entry point for the seedgen CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var opts generateFlags

	rootCmd := &cobra.Command{
		Use:   "seedgen",
		Short: "Generate an idempotent PostgreSQL bootstrap script from media catalog files",
		Long: "Reads the category files in the data directory, normalizes every item and writes\n" +
			"a single SQL script that creates the schema and seeds media, demo users and lists.\n" +
			"Running without a subcommand is the same as 'seedgen generate'.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}
	opts.register(rootCmd)

	rootCmd.AddCommand(
		newGenerateCmd(),
		newApplyCmd(),
		newHistoryCmd(),
		newInitCmd(),
		newTypesCmd(),
		newHashPasswordCmd(),
	)

	return rootCmd
}
