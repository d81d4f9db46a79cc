package console

import (
	"fmt"

	"github.com/shopspring/decimal"

	"tradebuk/internal/ledger"
	"tradebuk/internal/models"
)

// FormatMoney prefixes a two-decimal amount with the currency symbol, e.g. ₹-10.00.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// FormatTrade renders one trade on a single line.
func FormatTrade(symbol string, t models.Trade) string {
	return fmt.Sprintf("Date: %s, Stock: %s, Action: %s, Quantity: %d, Price: %s, Profit/Loss: %s, Notes: %s",
		t.Date, t.Stock, t.Action, t.Quantity,
		FormatMoney(symbol, t.Price),
		FormatMoney(symbol, t.DisplayProfitLoss()),
		t.Notes,
	)
}

// FormatSummary renders the total of a profit/loss summary.
func FormatSummary(symbol string, s ledger.Summary) string {
	return fmt.Sprintf("Total %s profit/loss: %s", s.Period, FormatMoney(symbol, s.Amount()))
}
