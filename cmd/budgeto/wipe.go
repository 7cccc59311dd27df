package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adnanceeyy/budgeto/internal/cli"
)

func wipeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete all data",
		Long: `Delete every category, transaction, debt and account.

On the flat backend the store is re-seeded with the demo dataset after the
wipe; on SQLite it is left empty. The passcode and other settings are kept.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				return fmt.Errorf("refusing to wipe without --force")
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.WipeAll(ctx); err != nil {
				return fmt.Errorf("failed to wipe data: %w", err)
			}

			fmt.Println(cli.FormatSuccess("All data wiped"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm the wipe")

	return cmd
}
