package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradebuk/internal/ledger"
)

func newAddCmd(configDir *string) *cobra.Command {
	var in ledger.TradeInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a trade",
		Example: `  tradebuk add --date 2024-06-01 --stock ABC --action buy --quantity 10 --price 100
  tradebuk add --date 2024-06-03 --stock ABC --action sell --quantity 10 --price 110 --pl 100 --notes "target hit"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configDir, func(a *app) error {
				if _, err := a.ledger.RecordTrade(cmd.Context(), in); err != nil {
					return fmt.Errorf("invalid trade: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Trade recorded successfully!")
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Date, "date", "", "trade date (YYYY-MM-DD)")
	f.StringVar(&in.Stock, "stock", "", "stock symbol")
	f.StringVar(&in.Action, "action", "", "buy or sell")
	f.StringVar(&in.Quantity, "quantity", "", "number of shares")
	f.StringVar(&in.Price, "price", "", "price per share")
	f.StringVar(&in.ProfitLoss, "pl", "", "realized profit/loss (optional)")
	f.StringVar(&in.Notes, "notes", "", "free-form notes (optional)")
	for _, name := range []string{"date", "action", "quantity", "price"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
