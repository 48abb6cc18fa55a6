package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nikolayk812/shopledger/internal/api"
	"github.com/nikolayk812/shopledger/internal/config"
	"github.com/nikolayk812/shopledger/internal/ledger"
	"github.com/nikolayk812/shopledger/internal/session"
	"github.com/nikolayk812/shopledger/internal/storefront"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const defaultOwner = "guest"

// app is everything a subcommand needs, built once per invocation.
type app struct {
	cfg      config.Config
	registry *prometheus.Registry
	client   *api.Client
	session  *session.Manager
	svc      *storefront.Service
	close    func()
}

type rootOptions struct {
	configPath string
	owner      string
}

// newRootCmd builds the command tree. The returned func releases the storage
// connections opened by the command that ran, whether it succeeded or not.
func newRootCmd() (*cobra.Command, func()) {
	opts := &rootOptions{}
	a := &app{}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Shopping cart and wishlist client for the storefront API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			built, err := newApp(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*a = *built

			logger := log.Logger.With().Str("owner", opts.owner).Logger()
			cmd.SetContext(logger.WithContext(cmd.Context()))

			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.owner, "owner", defaultOwner, "shopper whose cart and wishlist are used")

	root.AddCommand(
		newServeCmd(a),
		newCartCmd(a),
		newWishlistCmd(a),
		newAuthCmd(a),
		newAdminCmd(a),
		newReviewsCmd(a),
	)

	closeApp := func() {
		if a.close != nil {
			a.close()
			a.close = nil
		}
	}

	return root, closeApp
}

func newApp(ctx context.Context, opts *rootOptions, logOut io.Writer) (*app, error) {
	if err := validateOwner(opts.owner); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	if err := setupLogger(cfg.Log, logOut); err != nil {
		return nil, fmt.Errorf("setupLogger: %w", err)
	}

	store, closeStore, err := storageOpener(ctx, cfg.Storage, opts.owner)
	if err != nil {
		return nil, fmt.Errorf("openStorage: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	tokens := session.NewTokens(store)

	client, err := api.New(cfg.API,
		api.WithTokenSource(tokens),
		api.WithMetrics(api.NewMetrics(registry)),
	)
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("api.New: %w", err)
	}

	svc := storefront.New(client, ledger.NewCart(store), ledger.NewWishlist(store), cfg.Currency())

	return &app{
		cfg:      cfg,
		registry: registry,
		client:   client,
		session:  session.NewManager(tokens, client),
		svc:      svc,
		close:    closeStore,
	}, nil
}

// validateOwner keeps the owner usable as a single path element below
// storage.dir.
func validateOwner(owner string) error {
	if owner == "" {
		return fmt.Errorf("owner is empty")
	}
	if owner == "." || owner == ".." || strings.ContainsAny(owner, `/\`) {
		return fmt.Errorf("owner[%s] must not contain path separators or dot segments", owner)
	}
	return nil
}

func setupLogger(cfg config.Log, out io.Writer) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("zerolog.ParseLevel: %w", err)
	}

	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	log.Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log.Logger

	return nil
}
