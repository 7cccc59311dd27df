package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adnanceeyy/budgeto/internal/cli"
	"github.com/adnanceeyy/budgeto/internal/common"
	"github.com/adnanceeyy/budgeto/internal/model"
)

func passcodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passcode",
		Short: "Manage the app lock passcode",
		Long:  `Set, clear, or verify the passcode the app is locked behind. A wipe does not remove it.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <code>",
		Short: "Set the passcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.PutSetting(ctx, model.PasscodeKey, args[0]); err != nil {
				return fmt.Errorf("failed to store passcode: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Passcode set"))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the passcode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteSetting(ctx, model.PasscodeKey); err != nil {
				return fmt.Errorf("failed to clear passcode: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Passcode cleared"))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check <code>",
		Short: "Verify a passcode attempt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stored, err := store.GetSetting(ctx, model.PasscodeKey)
			if errors.Is(err, common.ErrNotFound) {
				fmt.Println(cli.InfoStyle.Render("No passcode is set."))
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to read passcode: %w", err)
			}

			if stored != args[0] {
				return errors.New("passcode does not match")
			}
			fmt.Println(cli.FormatSuccess("Passcode matches"))
			return nil
		},
	})

	return cmd
}
