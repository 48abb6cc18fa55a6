package main

import (
	"fmt"
	"time"

	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/spf13/cobra"
)

const refreshWindow = 5 * time.Minute

func newAuthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in and out of the storefront",
	}

	var creds domain.Credentials
	login := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.session.Login(cmd.Context(), creds)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", user.Email)
			return err
		},
	}
	login.Flags().StringVar(&creds.Email, "email", "", "account email")
	login.Flags().StringVar(&creds.Password, "password", "", "account password")
	_ = login.MarkFlagRequired("email")
	_ = login.MarkFlagRequired("password")

	cmd.AddCommand(
		login,
		&cobra.Command{
			Use:   "logout",
			Short: "Forget the stored session token",
			Args:  cobra.NoArgs,
			Run: func(*cobra.Command, []string) {
				a.session.Logout()
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the signed-in user",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.session.EnsureFresh(cmd.Context(), refreshWindow); err != nil {
					return err
				}
				user, ok := a.session.Tokens().UserFromToken()
				if !ok {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
					return err
				}
				return printJSON(cmd.OutOrStdout(), user)
			},
		},
	)

	return cmd
}
