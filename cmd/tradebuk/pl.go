package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradebuk/internal/console"
)

func newPLCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:       "pl <daily|weekly|monthly>",
		Short:     "Total profit/loss for a period ending today",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"daily", "weekly", "monthly"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configDir, func(a *app) error {
				summary, err := a.ledger.SummarizeProfitLoss(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), console.FormatSummary(a.currencySymbol(), summary))
				return nil
			})
		},
	}
}
