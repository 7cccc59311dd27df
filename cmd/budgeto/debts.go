package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/adnanceeyy/budgeto/internal/cli"
	"github.com/adnanceeyy/budgeto/internal/model"
)

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Track informal debts",
		Long:  `Keep a list of money owed to you and money you owe, and settle entries as they are paid.`,
	}

	cmd.AddCommand(listDebtsCmd())
	cmd.AddCommand(addDebtCmd())
	cmd.AddCommand(setDebtStatusCmd("settle", model.DebtSettled, "Mark a debt as settled"))
	cmd.AddCommand(setDebtStatusCmd("reopen", model.DebtPending, "Mark a settled debt as pending again"))
	cmd.AddCommand(deleteDebtCmd())

	return cmd
}

func listDebtsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all debts, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			debts, err := store.GetDebts(ctx)
			if err != nil {
				return fmt.Errorf("failed to get debts: %w", err)
			}

			if len(debts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No debts tracked."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Person"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Direction"),
				cli.HeaderStyle.Render("Status"),
				cli.HeaderStyle.Render("Note"))

			for _, debt := range debts {
				status := string(debt.Status)
				if debt.Status == model.DebtSettled {
					status = cli.SuccessStyle.Render(status)
				}
				fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%s\t%s\n",
					debt.ID, debt.Person, debt.Amount, debt.Type, status, debt.Note)
			}

			return nil
		},
	}
}

func addDebtCmd() *cobra.Command {
	var (
		amount   float64
		owedToMe bool
		note     string
	)

	cmd := &cobra.Command{
		Use:   "add <person>",
		Short: "Track a new debt",
		Long:  `Record a debt with the named counterparty. New debts always start pending.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			debtType := model.DebtIOwe
			if owedToMe {
				debtType = model.DebtOwedToMe
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			debt, err := store.AddDebt(ctx, model.Debt{
				Person: args[0],
				Amount: amount,
				Type:   debtType,
				Note:   note,
				Date:   time.Now().Format(time.RFC3339),
			})
			if err != nil {
				return fmt.Errorf("failed to create debt: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Tracking %.2f with %s (ID: %d)", debt.Amount, debt.Person, debt.ID)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "debt amount")
	cmd.Flags().BoolVar(&owedToMe, "owed-to-me", false, "the counterparty owes you (default: you owe them)")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func setDebtStatusCmd(use string, status model.DebtStatus, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid debt ID: %w", err)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.UpdateDebtStatus(ctx, id, status); err != nil {
				return fmt.Errorf("failed to update debt status: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Debt %d is now %s", id, status)))
			return nil
		},
	}
}

func deleteDebtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid debt ID: %w", err)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteDebt(ctx, id); err != nil {
				return fmt.Errorf("failed to delete debt: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted debt %d", id)))
			return nil
		},
	}
}
