package main

import (
	"fmt"

	"github.com/nikolayk812/shopledger/internal/admin"
	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/spf13/cobra"
)

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Back-office operations, requires an admin session",
	}

	console := func() *admin.Console {
		return admin.NewConsole(a.client)
	}

	bulk := &cobra.Command{
		Use:   "bulk",
		Short: "Apply one action to many records",
	}

	bulk.AddCommand(
		&cobra.Command{
			Use:   "products <activate|deactivate|delete> <id>...",
			Short: "Change or delete products in bulk",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				action, err := domain.ParseProductAction(args[0])
				if err != nil {
					return err
				}
				c := console()
				if err := c.BulkProducts(cmd.Context(), args[1:], action); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), c.Products())
			},
		},
		&cobra.Command{
			Use:   "orders <cancel|ship|deliver> <id>...",
			Short: "Move orders through fulfilment in bulk",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				action, err := domain.ParseOrderAction(args[0])
				if err != nil {
					return err
				}
				c := console()
				if err := c.BulkOrders(cmd.Context(), args[1:], action); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), c.Orders())
			},
		},
		&cobra.Command{
			Use:   "users <activate|deactivate|delete> <id>...",
			Short: "Change or delete user accounts in bulk",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				action, err := domain.ParseUserAction(args[0])
				if err != nil {
					return err
				}
				c := console()
				if err := c.BulkUsers(cmd.Context(), args[1:], action); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), c.Users())
			},
		},
	)

	var page, pageSize int
	var filter domain.AuditLogFilter
	audit := &cobra.Command{
		Use:   "audit",
		Short: "List audit log entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logs, err := console().AuditLogs(cmd.Context(), filter, page, pageSize)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), logs)
		},
	}
	audit.Flags().IntVar(&page, "page", 1, "page number")
	audit.Flags().IntVar(&pageSize, "page-size", 20, "entries per page")
	audit.Flags().StringVar(&filter.User, "user", "", "only entries of this user")
	audit.Flags().StringVar(&filter.Action, "action", "", "only entries with this action")
	audit.Flags().StringVar(&filter.Search, "search", "", "free text search")

	cmd.AddCommand(
		bulk,
		audit,
		newExportCmd(a),
		&cobra.Command{
			Use:   "analytics",
			Short: "Print sales and user statistics",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				stats, err := console().Analytics(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), stats)
			},
		},
		&cobra.Command{
			Use:   "security",
			Short: "Print the result of the security checks",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				checks, err := console().SecurityChecks(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), checks)
			},
		},
		&cobra.Command{
			Use:   "delete-user <id>",
			Short: "Delete a user account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := console().DeleteUser(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "user %s deleted\n", args[0])
				return err
			},
		},
	)

	return cmd
}
