package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/catalog-seed/internal/application/handlers"
	"github.com/ersonp/catalog-seed/internal/infrastructure/config"
)

// generateFlags override the configured paths for one run.
type generateFlags struct {
	dataDir string
	output  string
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.dataDir, "data-dir", "d", "", "Catalog directory (overrides data_dir)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Script path (overrides output)")
}

func newGenerateCmd() *cobra.Command {
	var opts generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the bootstrap SQL script",
		Long: "Loads every catalog file in the data directory in filename order and writes the\n" +
			"bootstrap script. Output is byte-identical for identical inputs.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}
	opts.register(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, flags generateFlags) error {
	ctx := cmd.Context()

	return withGenerateHandler(ctx, func(d *Deps, handler *handlers.GenerateHandler) error {
		dataDir := d.DataDir()
		if flags.dataDir != "" {
			dataDir = config.ResolvePath(d.BasePath, flags.dataDir)
		}
		output := d.OutputPath()
		if flags.output != "" {
			output = config.ResolvePath(d.BasePath, flags.output)
		}

		result, err := handler.Handle(ctx, handlers.GenerateOptions{
			DataDir:      dataDir,
			OutputPath:   output,
			PasswordHash: d.Config.Seed.PasswordHash,
			Users:        d.Config.SeedUsers(),
		})
		if err != nil {
			return err
		}

		printSummary(os.Stdout, result)
		return nil
	})
}

// printSummary writes the three-line run summary.
func printSummary(w io.Writer, result *handlers.GenerateResult) {
	types := make([]string, len(result.Types))
	for i, mt := range result.Types {
		types[i] = string(mt)
	}

	fmt.Fprintf(w, "Generated %s\n", result.OutputPath)
	fmt.Fprintf(w, "Media rows: %d\n", result.MediaCount)
	fmt.Fprintf(w, "Media types: %d -> %s\n", len(types), strings.Join(types, ", "))
}
