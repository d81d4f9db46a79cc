package models

import "github.com/shopspring/decimal"

// Trade represents a recorded buy or sell in the ledger.
// Rows are append-only: nothing updates or deletes them once stored.
type Trade struct {
	ID         uint                `gorm:"primaryKey" json:"id"`
	Date       string              `gorm:"type:text;index:idx_trades_date" json:"date"` // YYYY-MM-DD
	Stock      string              `gorm:"type:text" json:"stock"`
	Action     Action              `gorm:"type:text" json:"action"`
	Quantity   int64               `gorm:"type:integer" json:"quantity"`
	Price      decimal.Decimal     `gorm:"type:real" json:"price"`
	ProfitLoss decimal.NullDecimal `gorm:"type:real" json:"profit_loss"` // NULL when not recorded
	Notes      string              `gorm:"type:text" json:"notes"`
}

// DisplayProfitLoss returns the profit/loss to show to a user.
// An absent value shows as zero; the stored value is left untouched.
func (t Trade) DisplayProfitLoss() decimal.Decimal {
	if !t.ProfitLoss.Valid {
		return decimal.Zero
	}
	return t.ProfitLoss.Decimal
}
