package main

import (
	"github.com/nikolayk812/shopledger/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the cart and wishlist over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			router := httpapi.NewRouter(a.svc, a.registry)
			return httpapi.Serve(cmd.Context(), a.cfg.HTTP.Listen, router)
		},
	}
}
