package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/catalog-seed/internal/application/handlers"
	"github.com/ersonp/catalog-seed/internal/infrastructure/hashing"
)

func newHashPasswordCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for seed.password_hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := handlers.NewHashHandler(hashing.NewBcryptHasher(cost)).Handle(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", 0, "bcrypt cost (defaults to bcrypt.DefaultCost)")

	return cmd
}
