package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/catalog-seed/internal/application/handlers"
	"github.com/ersonp/catalog-seed/internal/infrastructure/parsers"
)

func newTypesCmd() *cobra.Command {
	var scan bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "Show category to media type mappings",
		Long: "Prints the fixed category table. With --scan, lists the media types and\n" +
			"record counts found in the data directory instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scan {
				return runTypesScan()
			}
			printTypeTable(os.Stdout, handlers.NewTypesHandler(nil).Table())
			return nil
		},
	}

	cmd.Flags().BoolVar(&scan, "scan", false, "Scan the data directory")

	return cmd
}

func runTypesScan() error {
	return withDeps(func(d *Deps) error {
		handler := handlers.NewTypesHandler(parsers.NewLoader(d.Logger))

		counts, err := handler.Scan(d.DataDir())
		if err != nil {
			return err
		}

		if len(counts) == 0 {
			fmt.Printf("No catalog files found in %s.\n", d.DataDir())
			return nil
		}

		printTypeCounts(os.Stdout, counts)
		return nil
	})
}

func printTypeTable(w io.Writer, table []handlers.CategoryMapping) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tMEDIA TYPE\tCLASS")
	for _, m := range table {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Category, m.MediaType, m.MediaType.Class())
	}
	tw.Flush()
}

func printTypeCounts(w io.Writer, counts []handlers.TypeCount) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MEDIA TYPE\tRECORDS")
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.MediaType, c.Records)
	}
	tw.Flush()
}
