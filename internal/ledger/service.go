package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tradebuk/internal/models"
)

// Store is the record store the ledger persists trades in.
type Store interface {
	Insert(ctx context.Context, trade *models.Trade) error
	List(ctx context.Context) ([]models.Trade, error)
	SumProfitLoss(ctx context.Context, from, to string) (decimal.NullDecimal, error)
}

// Summary is the profit/loss of one period.
type Summary struct {
	Period Period
	Range  Range
	Total  decimal.NullDecimal // invalid when nothing in range recorded a profit/loss
}

// Amount returns the total, reading "no result" as zero.
func (s Summary) Amount() decimal.Decimal {
	if !s.Total.Valid {
		return decimal.Zero
	}
	return s.Total.Decimal
}

// Service records trades and answers profit/loss queries.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a ledger service on top of store.
func NewService(store Store, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: logger.Named("ledger"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordTrade validates in and appends it to the store.
// Nothing is written when validation fails.
func (s *Service) RecordTrade(ctx context.Context, in TradeInput) (models.Trade, error) {
	trade, err := in.Trade()
	if err != nil {
		s.logger.Debug("Rejected trade", zap.Error(err))
		return models.Trade{}, err
	}

	if err := s.store.Insert(ctx, &trade); err != nil {
		s.logger.Error("Failed to save trade record", zap.Error(err))
		return models.Trade{}, &StoreError{Op: "insert trade", Err: err}
	}

	s.logger.Info("Recorded trade",
		zap.Uint("trade_id", trade.ID),
		zap.String("date", trade.Date),
		zap.String("stock", trade.Stock),
		zap.Stringer("action", trade.Action),
	)
	return trade, nil
}

// ListTrades returns every stored trade in insertion order.
func (s *Service) ListTrades(ctx context.Context) ([]models.Trade, error) {
	trades, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list trades", zap.Error(err))
		return nil, &StoreError{Op: "list trades", Err: err}
	}
	return trades, nil
}

// SummarizeProfitLoss sums the recorded profit/loss of trades dated within the
// period ending today.
func (s *Service) SummarizeProfitLoss(ctx context.Context, period string) (Summary, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return Summary{}, err
	}

	r := p.Range(s.now())
	from, to := r.Bounds()
	total, err := s.store.SumProfitLoss(ctx, from, to)
	if err != nil {
		s.logger.Error("Failed to sum profit/loss", zap.String("from", from), zap.String("to", to), zap.Error(err))
		return Summary{}, &StoreError{Op: "sum profit/loss", Err: err}
	}

	s.logger.Debug("Summarized profit/loss",
		zap.Stringer("period", p),
		zap.String("from", from),
		zap.String("to", to),
		zap.Bool("has_total", total.Valid),
	)
	return Summary{Period: p, Range: r, Total: total}, nil
}
