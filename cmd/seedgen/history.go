package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/catalog-seed/internal/application/handlers"
	"github.com/ersonp/catalog-seed/internal/domain/entities"
	"github.com/ersonp/catalog-seed/internal/domain/ports"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generation runs",
		Long:  "Lists generation runs from the history ledger, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryLimit, "Maximum number of runs to display")

	return cmd
}

func runHistory(cmd *cobra.Command, limit int) error {
	ctx := cmd.Context()

	return withLedger(ctx, func(d *Deps, ledger ports.RunLedger) error {
		runs, err := handlers.NewHistoryHandler(ledger).Handle(ctx, limit)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("No generation runs recorded.")
			return nil
		}

		printHistory(os.Stdout, runs)
		return nil
	})
}

// printHistory writes runs as an aligned table.
func printHistory(w io.Writer, runs []entities.GenerationRun) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tCHECKSUM\tMEDIA\tTYPES\tOUTPUT")
	for i := range runs {
		run := &runs[i]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			run.CreatedAt.Local().Format(time.DateTime),
			shortChecksum(run.Checksum),
			run.MediaCount,
			len(run.MediaTypes),
			run.OutputPath,
		)
	}
	tw.Flush()
}

func shortChecksum(sum string) string {
	if len(sum) <= checksumDisplayLen {
		return sum
	}
	return sum[:checksumDisplayLen]
}
