package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradebuk/internal/console"
)

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:   "tradebuk",
		Short: "A personal trade ledger",
		Long: `TradeBuk records buy and sell trades in a local SQLite file, lists them and
totals profit/loss over the last day, the trailing week or the current month.

Run without a subcommand for the interactive menu.

Examples:
  tradebuk
  tradebuk add --date 2024-06-01 --stock ABC --action buy --quantity 10 --price 100 --pl 50
  tradebuk list
  tradebuk pl weekly`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, configDir)
		},
	}

	root.PersistentFlags().StringVarP(&configDir, "config", "c", "", "directory containing config.yml")

	root.AddCommand(newAddCmd(&configDir))
	root.AddCommand(newListCmd(&configDir))
	root.AddCommand(newPLCmd(&configDir))
	return root
}

func runMenu(cmd *cobra.Command, configDir string) error {
	a, err := openApp(configDir)
	if err != nil {
		return err
	}
	defer a.Close()

	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = console.New(a.ledger, cmd.InOrStdin(), cmd.OutOrStdout(), a.currencySymbol(), a.log).Run(ctx)
	if errors.Is(err, context.Canceled) {
		a.log.Info("Shutdown signal received, closing ledger")
		return nil
	}
	return err
}

// withApp opens the app for a one-shot command and closes it afterwards.
func withApp(configDir string, fn func(a *app) error) error {
	a, err := openApp(configDir)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := fn(a); err != nil {
		a.log.Debug("Command failed", zap.Error(err))
		return err
	}
	return nil
}
