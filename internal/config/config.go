package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. TRADEBUK_DATABASE_DSN.
const EnvPrefix = "TRADEBUK"

// Config holds all configuration for the application.
type Config struct {
	Database Database `mapstructure:"database"`
	Logger   Logger   `mapstructure:"logger"`
	Ledger   Ledger   `mapstructure:"ledger"`
}

// Database holds the configuration for the trade store.
type Database struct {
	DSN string `mapstructure:"dsn"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Ledger holds presentation settings for the ledger.
type Ledger struct {
	Currency string `mapstructure:"currency"` // ISO 4217 code
}

// LoadConfig reads configuration from path/config.yml, an optional .env file and
// environment variables. A missing config file is not an error.
func LoadConfig(path string) (config Config, err error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database.dsn", "tradebuk.db")
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("ledger.currency", money.INR)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}
	config.Ledger.Currency = strings.ToUpper(config.Ledger.Currency)

	err = config.Validate()
	return
}

// Validate checks the settings that would otherwise fail late.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn must not be empty")
	}
	if money.GetCurrency(c.Ledger.Currency) == nil {
		return fmt.Errorf("ledger.currency: unknown currency code %q", c.Ledger.Currency)
	}
	return nil
}

// CurrencySymbol returns the display symbol of the configured currency.
func (l Ledger) CurrencySymbol() string {
	if c := money.GetCurrency(l.Currency); c != nil {
		return c.Grapheme
	}
	return l.Currency
}
