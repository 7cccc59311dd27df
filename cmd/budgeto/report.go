package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/adnanceeyy/budgeto/internal/cli"
	"github.com/adnanceeyy/budgeto/internal/report"
)

func reportCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show a monthly income/expense summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if month == "" {
				month = time.Now().Format("2006-01")
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			summary, err := report.Monthly(ctx, store, month)
			if err != nil {
				return fmt.Errorf("failed to build report: %w", err)
			}

			fmt.Println(cli.FormatTitle("Report for " + summary.Month))
			fmt.Printf("  Income:   %s\n", cli.SuccessStyle.Render(fmt.Sprintf("%.2f", summary.Income)))
			fmt.Printf("  Expenses: %s\n", cli.ErrorStyle.Render(fmt.Sprintf("%.2f", summary.Expenses)))
			fmt.Printf("  Net:      %.2f\n", summary.Net())

			if len(summary.ByCategory) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  No expenses this month."))
				return nil
			}

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "  %s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Spent"))
			for _, total := range summary.ByCategory {
				fmt.Fprintf(w, "  %s\t%.2f\n", total.Name, total.Amount)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to report on, YYYY-MM (default: current month)")

	return cmd
}
