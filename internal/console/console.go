package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"tradebuk/internal/ledger"
)

const menu = `
TradeBuk Menu:
1. Add Trade
2. View Trades
3. Calculate Profit/Loss
4. Exit
`

// Console is the interactive menu driving the ledger.
type Console struct {
	ledger *ledger.Service
	in     io.Reader
	out    io.Writer
	symbol string
	logger *zap.Logger

	lines <-chan line
}

// line is one line of input, or the error that ended reading.
type line struct {
	text string
	err  error
}

// New creates a console reading commands from in and writing to out.
// symbol is the currency symbol shown in prompts and amounts.
func New(svc *ledger.Service, in io.Reader, out io.Writer, symbol string, logger *zap.Logger) *Console {
	return &Console{
		ledger: svc,
		in:     in,
		out:    out,
		symbol: symbol,
		logger: logger.Named("console"),
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// It returns ctx.Err() when cancelled, the read error when input fails, and nil
// on Exit or end of input.
func (c *Console) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	c.lines = readLines(c.in, done)

	for {
		fmt.Fprint(c.out, menu)
		choice, err := c.prompt(ctx, "Enter your choice (1-4): ")
		if err != nil {
			return c.stop(err)
		}

		switch choice {
		case "1":
			err = c.addTrade(ctx)
		case "2":
			err = c.viewTrades(ctx)
		case "3":
			err = c.calculateProfitLoss(ctx)
		case "4":
			fmt.Fprintln(c.out, "Thank you for using TradeBuk!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return c.stop(err)
		}
	}
}

func (c *Console) stop(err error) error {
	if errors.Is(err, io.EOF) {
		c.logger.Debug("Input closed")
		return nil
	}
	c.logger.Info("Console stopped", zap.Error(err))
	return err
}

// readLines feeds the lines of r into a channel so that prompts can also wait on
// context cancellation. Lines have no length limit. The channel is closed at end
// of input or, after the pending read returns, once done is closed; a read error
// other than io.EOF is delivered before closing.
func readLines(r io.Reader, done <-chan struct{}) <-chan line {
	lines := make(chan line)
	go func() {
		defer close(lines)
		send := func(l line) bool {
			select {
			case lines <- l:
				return true
			case <-done:
				return false
			}
		}

		br := bufio.NewReader(r)
		for {
			text, err := br.ReadString('\n')
			if text != "" && !send(line{text: strings.TrimRight(text, "\r\n")}) {
				return
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					send(line{err: fmt.Errorf("read input: %w", err)})
				}
				return
			}
		}
	}()
	return lines
}

func (c *Console) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(c.out, text)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

type field struct {
	prompt string
	dst    *string
	check  func(string) error
}

func (c *Console) addTrade(ctx context.Context) error {
	var in ledger.TradeInput
	fields := []field{
		{"Enter date (YYYY-MM-DD): ", &in.Date, func(s string) error { _, err := ledger.ParseDate(s); return err }},
		{"Enter stock symbol: ", &in.Stock, nil},
		{"Buy or Sell: ", &in.Action, func(s string) error { _, err := ledger.ParseAction(s); return err }},
		{"Enter quantity: ", &in.Quantity, func(s string) error { _, err := ledger.ParseQuantity(s); return err }},
		{fmt.Sprintf("Enter price per share (in %s): ", c.symbol), &in.Price, func(s string) error { _, err := ledger.ParsePrice(s); return err }},
		{fmt.Sprintf("Enter profit/loss (in %s, optional): ", c.symbol), &in.ProfitLoss, nil},
		{"Add notes (optional): ", &in.Notes, nil},
	}

	for _, f := range fields {
		value, err := c.prompt(ctx, f.prompt)
		if err != nil {
			return err
		}
		if f.check != nil {
			if err := f.check(value); err != nil {
				c.report(err, "Invalid input")
				return nil
			}
		}
		*f.dst = value
	}

	if _, err := c.ledger.RecordTrade(ctx, in); err != nil {
		c.report(err, "Invalid input")
		return nil
	}
	fmt.Fprintln(c.out, "Trade recorded successfully!")
	return nil
}

func (c *Console) viewTrades(ctx context.Context) error {
	trades, err := c.ledger.ListTrades(ctx)
	if err != nil {
		c.report(err, "Error")
		return nil
	}
	if len(trades) == 0 {
		fmt.Fprintln(c.out, "No trades found.")
		return nil
	}
	for _, t := range trades {
		fmt.Fprintln(c.out, FormatTrade(c.symbol, t))
	}
	return nil
}

func (c *Console) calculateProfitLoss(ctx context.Context) error {
	period, err := c.prompt(ctx, "Enter period (daily/weekly/monthly): ")
	if err != nil {
		return err
	}

	summary, err := c.ledger.SummarizeProfitLoss(ctx, period)
	if err != nil {
		c.report(err, "Error")
		return nil
	}
	fmt.Fprintln(c.out, FormatSummary(c.symbol, summary))
	return nil
}

// report prints an operation failure; the menu carries on afterwards.
func (c *Console) report(err error, validationPrefix string) {
	switch {
	case errors.Is(err, ledger.ErrStore):
		var serr *ledger.StoreError
		if errors.As(err, &serr) {
			err = serr.Err
		}
		fmt.Fprintf(c.out, "Database error: %v\n", err)
	case errors.Is(err, ledger.ErrValidation):
		fmt.Fprintf(c.out, "%s: %v\n", validationPrefix, err)
	default:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}
