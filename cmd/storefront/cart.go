package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and change the shopping cart",
	}

	var qty int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.svc.AddToCart(cmd.Context(), args[0], qty); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), a.svc.Cart().State())
		},
	}
	add.Flags().IntVar(&qty, "qty", 1, "number of units to add")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the cart with its totals",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printJSON(cmd.OutOrStdout(), a.svc.Cart().State())
			},
		},
		add,
		&cobra.Command{
			Use:   "remove <product-id>",
			Short: "Remove a product from the cart",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a.svc.Cart().RemoveItem(args[0])
				return printJSON(cmd.OutOrStdout(), a.svc.Cart().State())
			},
		},
		&cobra.Command{
			Use:   "qty <product-id> <quantity>",
			Short: "Set the quantity of a product in the cart",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("quantity[%s] is not an integer", args[1])
				}
				a.svc.Cart().SetQuantity(args[0], n)
				return printJSON(cmd.OutOrStdout(), a.svc.Cart().State())
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove everything from the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a.svc.Cart().Clear()
				return printJSON(cmd.OutOrStdout(), a.svc.Cart().State())
			},
		},
	)

	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("enc.Encode: %w", err)
	}
	return nil
}
