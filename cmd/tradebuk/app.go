package main

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tradebuk/internal/config"
	"tradebuk/internal/database"
	"tradebuk/internal/ledger"
	"tradebuk/internal/logger"
)

// app holds the process-wide resources shared by every command.
type app struct {
	cfg    config.Config
	log    *zap.Logger
	db     *gorm.DB
	ledger *ledger.Service
}

// openApp loads configuration, builds the logger and opens the trade store.
// Any failure here is fatal for the command.
func openApp(configDir string) (*app, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}

	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	if err != nil {
		return nil, fmt.Errorf("could not initialize logger: %w", err)
	}
	log.Debug("Configuration loaded", zap.String("dsn", cfg.Database.DSN), zap.String("currency", cfg.Ledger.Currency))

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		log.Error("Failed to connect to database", zap.String("dsn", cfg.Database.DSN), zap.Error(err))
		_ = log.Sync()
		return nil, fmt.Errorf("database error: %w", err)
	}
	log.Debug("Database connection successful and schema migrated.")

	return &app{
		cfg:    cfg,
		log:    log,
		db:     db,
		ledger: ledger.NewService(database.NewTradeStore(db), log),
	}, nil
}

// Close releases the store and flushes the log. Safe to call once per app.
func (a *app) Close() {
	if err := database.Close(a.db); err != nil {
		a.log.Error("Failed to close database", zap.Error(err))
	}
	_ = a.log.Sync()
}

func (a *app) currencySymbol() string {
	return a.cfg.Ledger.CurrencySymbol()
}
