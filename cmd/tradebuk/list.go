package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradebuk/internal/console"
)

func newListCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded trades in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configDir, func(a *app) error {
				trades, err := a.ledger.ListTrades(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(trades) == 0 {
					fmt.Fprintln(out, "No trades found.")
					return nil
				}
				for _, t := range trades {
					fmt.Fprintln(out, console.FormatTrade(a.currencySymbol(), t))
				}
				return nil
			})
		},
	}
}
