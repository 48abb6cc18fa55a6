package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
)

func init() {
	// snapshots and API bodies carry amounts as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root, closeApp := newRootCmd()
	err := root.ExecuteContext(ctx)
	closeApp()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
