package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWishlistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Inspect and change the wishlist",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the wishlist",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printJSON(cmd.OutOrStdout(), a.svc.Wishlist().State())
			},
		},
		&cobra.Command{
			Use:   "add <product-id>",
			Short: "Save a product to the wishlist",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.svc.AddToWishlist(cmd.Context(), args[0]); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), a.svc.Wishlist().State())
			},
		},
		&cobra.Command{
			Use:   "remove <product-id>",
			Short: "Remove a product from the wishlist",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a.svc.Wishlist().RemoveItem(args[0])
				return printJSON(cmd.OutOrStdout(), a.svc.Wishlist().State())
			},
		},
		&cobra.Command{
			Use:   "move <product-id>",
			Short: "Move a saved product into the cart",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if !a.svc.MoveToCart(args[0]) {
					return fmt.Errorf("product[%s] is not on the wishlist", args[0])
				}
				return printJSON(cmd.OutOrStdout(), a.svc.Cart().State())
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove everything from the wishlist",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a.svc.Wishlist().Clear()
				return printJSON(cmd.OutOrStdout(), a.svc.Wishlist().State())
			},
		},
	)

	return cmd
}
