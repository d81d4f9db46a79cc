package ledger

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tradebuk/internal/models"
)

// DateFormat is the on-disk and input format of trade dates.
const DateFormat = "2006-01-02"

// ParseDate parses an ISO calendar date. Month and day must be zero-padded so that
// stored dates keep sorting lexicographically.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, invalid("date", "time data %q does not match format 'YYYY-MM-DD'", s)
	}
	return d, nil
}

// ParseAction lower-cases s and accepts only buy or sell.
func ParseAction(s string) (models.Action, error) {
	a := models.Action(strings.ToLower(s))
	if !a.Valid() {
		return "", invalid("action", "Action must be 'buy' or 'sell'")
	}
	return a, nil
}

// ParseQuantity parses a base-10 integer quantity.
func ParseQuantity(s string) (int64, error) {
	s = strings.TrimSpace(s)
	q, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, invalid("quantity", "invalid literal for quantity: %q", s)
	}
	return q, nil
}

// ParsePrice parses a decimal price per unit.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	p, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, invalid("price", "could not convert string to price: %q", s)
	}
	if !fitsReal(p) {
		return decimal.Decimal{}, invalid("price", "price out of range: %q", s)
	}
	return p, nil
}

// ParseProfitLoss parses an optional profit/loss. The empty string means the value
// was not recorded, which is kept apart from zero.
func ParseProfitLoss(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.NullDecimal{}, invalid("profit_loss", "could not convert string to profit/loss: %q", s)
	}
	if !fitsReal(v) {
		return decimal.NullDecimal{}, invalid("profit_loss", "profit/loss out of range: %q", s)
	}
	return decimal.NewNullDecimal(v), nil
}

// fitsReal reports whether d survives the trip through a REAL column, which
// holds float64 and turns anything larger into infinity.
func fitsReal(d decimal.Decimal) bool {
	return !math.IsInf(d.InexactFloat64(), 0)
}

// TradeInput carries the raw text of a trade as typed by the user.
type TradeInput struct {
	Date       string
	Stock      string
	Action     string
	Quantity   string
	Price      string
	ProfitLoss string // empty when not recorded
	Notes      string
}

// Trade validates every field and builds the record to store.
// Fields are checked in prompt order; the first failure is returned.
func (in TradeInput) Trade() (models.Trade, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return models.Trade{}, err
	}
	action, err := ParseAction(in.Action)
	if err != nil {
		return models.Trade{}, err
	}
	quantity, err := ParseQuantity(in.Quantity)
	if err != nil {
		return models.Trade{}, err
	}
	price, err := ParsePrice(in.Price)
	if err != nil {
		return models.Trade{}, err
	}
	profitLoss, err := ParseProfitLoss(in.ProfitLoss)
	if err != nil {
		return models.Trade{}, err
	}

	return models.Trade{
		Date:       date.Format(DateFormat),
		Stock:      in.Stock,
		Action:     action,
		Quantity:   quantity,
		Price:      price,
		ProfitLoss: profitLoss,
		Notes:      in.Notes,
	}, nil
}
