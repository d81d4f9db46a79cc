package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "tradebuk.db", cfg.Database.DSN)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "stderr", cfg.Logger.Output)
	assert.Equal(t, "INR", cfg.Ledger.Currency)
	assert.Equal(t, "₹", cfg.Ledger.CurrencySymbol())
}

func TestLoadConfig_File(t *testing.T) {
	dir := writeConfig(t, `
database:
  dsn: /tmp/ledger.db
logger:
  level: debug
  format: json
ledger:
  currency: usd
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ledger.db", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "USD", cfg.Ledger.Currency)
	assert.Equal(t, "$", cfg.Ledger.CurrencySymbol())
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := writeConfig(t, "database:\n  dsn: from-file.db\n")
	t.Setenv("TRADEBUK_DATABASE_DSN", "from-env.db")
	t.Setenv("TRADEBUK_LOGGER_LEVEL", "error")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env.db", cfg.Database.DSN)
	assert.Equal(t, "error", cfg.Logger.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("UnknownCurrency", func(t *testing.T) {
		dir := writeConfig(t, "ledger:\n  currency: XYZ1\n")
		_, err := LoadConfig(dir)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown currency code")
	})

	t.Run("MalformedFile", func(t *testing.T) {
		dir := writeConfig(t, "database: [unterminated\n")
		_, err := LoadConfig(dir)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         Config
		expectError bool
	}{
		{
			name: "Valid",
			cfg:  Config{Database: Database{DSN: "a.db"}, Ledger: Ledger{Currency: "INR"}},
		},
		{
			name:        "Empty DSN",
			cfg:         Config{Database: Database{DSN: "  "}, Ledger: Ledger{Currency: "INR"}},
			expectError: true,
		},
		{
			name:        "Empty currency",
			cfg:         Config{Database: Database{DSN: "a.db"}},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
