package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tradebuk/internal/models"
)

// ErrNonFinite is returned when a stored amount or a sum over amounts is
// infinite and cannot be represented as a decimal.
var ErrNonFinite = errors.New("amount out of range")

// infinite matches rows whose REAL amounts overflowed to infinity. SQLite reads
// the literal 9e999 as +Inf.
const infinite = "abs(price) >= 9e999 OR abs(profit_loss) >= 9e999"

// TradeStore is the gorm-backed record store for trades.
type TradeStore struct {
	db *gorm.DB
}

// NewTradeStore creates a TradeStore on an already migrated connection.
func NewTradeStore(db *gorm.DB) *TradeStore {
	return &TradeStore{db: db}
}

// Insert appends trade and fills in the id assigned by SQLite.
func (s *TradeStore) Insert(ctx context.Context, trade *models.Trade) error {
	return s.db.WithContext(ctx).Create(trade).Error
}

// List returns every trade in insertion order. A row holding an infinite amount
// fails the whole listing with ErrNonFinite.
func (s *TradeStore) List(ctx context.Context) ([]models.Trade, error) {
	var bad int64
	if err := s.db.WithContext(ctx).Model(&models.Trade{}).Where(infinite).Count(&bad).Error; err != nil {
		return nil, err
	}
	if bad > 0 {
		return nil, fmt.Errorf("%d stored trade(s): %w", bad, ErrNonFinite)
	}

	trades := []models.Trade{}
	if err := s.db.WithContext(ctx).Order("id asc").Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}

// SumProfitLoss sums profit_loss over trades dated within [from, to].
// Dates compare as zero-padded ISO strings. NULL values do not contribute, and a
// range with no recorded profit/loss yields an invalid NullDecimal. A sum that
// overflows float64 yields ErrNonFinite.
func (s *TradeStore) SumProfitLoss(ctx context.Context, from, to string) (decimal.NullDecimal, error) {
	var result struct {
		Total sql.NullFloat64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Trade{}).
		Select("SUM(profit_loss) AS total").
		Where("date BETWEEN ? AND ?", from, to).
		Scan(&result).Error
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	if !result.Total.Valid {
		return decimal.NullDecimal{}, nil
	}
	if math.IsInf(result.Total.Float64, 0) || math.IsNaN(result.Total.Float64) {
		return decimal.NullDecimal{}, fmt.Errorf("sum of profit/loss from %s to %s: %w", from, to, ErrNonFinite)
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(result.Total.Float64)), nil
}
