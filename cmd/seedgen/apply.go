package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/catalog-seed/internal/application/handlers"
	"github.com/ersonp/catalog-seed/internal/infrastructure/config"
)

func newApplyCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Execute the generated script against PostgreSQL",
		Long: "Runs the generated bootstrap script against database.url (or DATABASE_URL).\n" +
			"The script wraps itself in one transaction and is safe to run repeatedly.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Script to execute (defaults to the configured output)")

	return cmd
}

func runApply(cmd *cobra.Command, file string) error {
	ctx := cmd.Context()

	return withApplyHandler(ctx, func(d *Deps, handler *handlers.ApplyHandler) error {
		path := d.OutputPath()
		if file != "" {
			path = config.ResolvePath(d.BasePath, file)
		}

		result, err := handler.Handle(ctx, path)
		if err != nil {
			return err
		}

		fmt.Printf("Applied %s (%d bytes)\n", result.ScriptPath, result.Bytes)
		return nil
	})
}
