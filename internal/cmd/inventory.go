package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/melmoskitchen/pantry/internal/api"
	"github.com/melmoskitchen/pantry/internal/errors"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.auth.Authenticated() {
			return errors.NewNotLoggedInError()
		}

		categories, err := a.client.Categories(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCATEGORY\tPRODUCTS")
		for _, c := range categories {
			fmt.Fprintf(w, "%s\t%s\t%d\n", c.ID, c.Name, c.ProductCount)
		}
		return w.Flush()
	},
}

var productsCmd = &cobra.Command{
	Use:   "products <category>",
	Short: "List products in a category",
	Long: `List the products in a category, by category id or name.

Examples:
  pantry products c1
  pantry products Spices`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.auth.Authenticated() {
			return errors.NewNotLoggedInError()
		}

		categories, err := a.client.Categories(cmd.Context())
		if err != nil {
			return err
		}

		var category *api.Category
		for i := range categories {
			if categories[i].ID == args[0] || categories[i].Name == args[0] {
				category = &categories[i]
				break
			}
		}
		if category == nil {
			return errors.New(errors.ErrCodeAPIResponse, fmt.Sprintf("no category %q", args[0])).
				WithSuggestion("Run 'pantry categories' to list them")
		}

		products, err := a.client.Products(cmd.Context(), category.ID)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PRODUCT\tQTY\tUNIT\tSTATUS")
		for _, p := range products {
			status := "ok"
			if p.Quantity <= p.LowStock {
				status = "low"
			}
			fmt.Fprintf(w, "%s\t%g\t%s\t%s\n", p.Name, p.Quantity, p.Unit, status)
		}
		return w.Flush()
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the stock movement log",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.auth.Authenticated() {
			return errors.NewNotLoggedInError()
		}

		entries, err := a.client.History(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tPRODUCT\tACTION\tQTY\tBY")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%s\n",
				e.CreatedAt.Format("2006-01-02 15:04"), e.Product, e.Action, e.Quantity, e.Actor)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd, productsCmd, historyCmd)
}
