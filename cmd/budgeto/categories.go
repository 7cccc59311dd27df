package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adnanceeyy/budgeto/internal/cli"
	"github.com/adnanceeyy/budgeto/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage spending categories",
		Long:  `List, add, update, and delete the categories transactions are grouped under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'budgeto categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Icon"),
				cli.HeaderStyle.Render("Color"),
				cli.HeaderStyle.Render("Budget"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 6),
				strings.Repeat("-", 20),
				strings.Repeat("-", 12),
				strings.Repeat("-", 8),
				strings.Repeat("-", 10))

			for _, cat := range categories {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\n", cat.ID, cat.Name, cat.Icon, cat.Color, cat.Budget)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		icon   string
		color  string
		budget float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			category, err := store.AddCategory(ctx, model.Category{
				Name:   args[0],
				Icon:   icon,
				Color:  color,
				Budget: budget,
			})
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q (ID: %d)", category.Name, category.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "tag", "icon key for the category")
	cmd.Flags().StringVar(&color, "color", "#6366F1", "display color (hex)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "monthly budget ceiling (0 = none)")

	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var (
		name   string
		icon   string
		color  string
		budget float64
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Long:  `Replace the fields of an existing category. Unset flags keep their current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid category ID: %w", err)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			var current *model.Category
			for i := range categories {
				if categories[i].ID == id {
					current = &categories[i]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("category %d not found", id)
			}

			updated := *current
			if cmd.Flags().Changed("name") {
				updated.Name = name
			}
			if cmd.Flags().Changed("icon") {
				updated.Icon = icon
			}
			if cmd.Flags().Changed("color") {
				updated.Color = color
			}
			if cmd.Flags().Changed("budget") {
				updated.Budget = budget
			}

			if err := store.UpdateCategory(ctx, id, updated); err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated category %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&icon, "icon", "", "new icon key")
	cmd.Flags().StringVar(&color, "color", "", "new display color (hex)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "new budget ceiling")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category and its transactions",
		Long:  `Remove a category. Every transaction filed under it is removed as well.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid category ID: %w", err)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteCategory(ctx, id); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %d and its transactions", id)))
			return nil
		},
	}
}
