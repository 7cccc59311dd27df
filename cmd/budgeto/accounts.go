package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adnanceeyy/budgeto/internal/cli"
	"github.com/adnanceeyy/budgeto/internal/model"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage money accounts",
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(addAccountCmd())
	cmd.AddCommand(updateAccountCmd())
	cmd.AddCommand(deleteAccountCmd())

	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			accounts, err := store.GetAccounts(ctx)
			if err != nil {
				return fmt.Errorf("failed to get accounts: %w", err)
			}

			if len(accounts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No accounts found. Use 'budgeto accounts add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Balance"),
				cli.HeaderStyle.Render("Currency"),
				cli.HeaderStyle.Render("In total"))

			var total float64
			for _, account := range accounts {
				inTotal := "no"
				if account.IncludeInTotal {
					inTotal = "yes"
					total += account.Balance
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\t%s\n",
					account.ID, account.Name, account.Type, account.Balance, account.Currency, inTotal)
			}
			fmt.Fprintf(w, "\t%s\t\t%.2f\t\t\n", cli.HeaderStyle.Render("Total"), total)

			return nil
		},
	}
}

func addAccountCmd() *cobra.Command {
	var (
		accountType  string
		balance      float64
		currency     string
		icon         string
		excludeTotal bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			account, err := store.AddAccount(ctx, model.Account{
				Name:           args[0],
				Type:           accountType,
				Balance:        balance,
				Currency:       currency,
				Icon:           icon,
				IncludeInTotal: !excludeTotal,
			})
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created account %q (ID: %d)", account.Name, account.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "cash", "account type tag (cash, bank, card)")
	cmd.Flags().Float64Var(&balance, "balance", 0, "starting balance")
	cmd.Flags().StringVar(&currency, "currency", "USD", "currency code")
	cmd.Flags().StringVar(&icon, "icon", "wallet", "icon key for the account")
	cmd.Flags().BoolVar(&excludeTotal, "exclude-from-total", false, "leave this account out of the combined balance")

	return cmd
}

func updateAccountCmd() *cobra.Command {
	var (
		name        string
		accountType string
		balance     float64
		currency    string
		icon        string
		inTotal     bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account",
		Long:  `Replace the fields of an existing account. Unset flags keep their current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid account ID: %w", err)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			accounts, err := store.GetAccounts(ctx)
			if err != nil {
				return fmt.Errorf("failed to get accounts: %w", err)
			}

			var current *model.Account
			for i := range accounts {
				if accounts[i].ID == id {
					current = &accounts[i]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("account %d not found", id)
			}

			updated := *current
			if cmd.Flags().Changed("name") {
				updated.Name = name
			}
			if cmd.Flags().Changed("type") {
				updated.Type = accountType
			}
			if cmd.Flags().Changed("balance") {
				updated.Balance = balance
			}
			if cmd.Flags().Changed("currency") {
				updated.Currency = currency
			}
			if cmd.Flags().Changed("icon") {
				updated.Icon = icon
			}
			if cmd.Flags().Changed("include-in-total") {
				updated.IncludeInTotal = inTotal
			}

			if err := store.UpdateAccount(ctx, id, updated); err != nil {
				return fmt.Errorf("failed to update account: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated account %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&accountType, "type", "", "new type tag")
	cmd.Flags().Float64Var(&balance, "balance", 0, "new balance")
	cmd.Flags().StringVar(&currency, "currency", "", "new currency code")
	cmd.Flags().StringVar(&icon, "icon", "", "new icon key")
	cmd.Flags().BoolVar(&inTotal, "include-in-total", true, "count this account toward the combined balance")

	return cmd
}

func deleteAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid account ID: %w", err)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteAccount(ctx, id); err != nil {
				return fmt.Errorf("failed to delete account: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted account %d", id)))
			return nil
		},
	}
}
