package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Trade represents one validated buy/sell event for a base/quote asset pair.
// Records are append-only; once accepted they are never edited or deleted.
type Trade struct {
	gorm.Model `json:"-"`
	UTCTime    time.Time       `gorm:"index;not null" json:"utc_time"`
	Operation  Operation       `gorm:"not null" json:"operation"`
	BaseAsset  string          `gorm:"not null" json:"base_asset"`
	QuoteAsset string          `gorm:"not null" json:"quote_asset"`
	Amount     decimal.Decimal `gorm:"type:decimal(32,16);not null" json:"amount"`
	Price      decimal.Decimal `gorm:"type:decimal(32,16);not null" json:"price"`
}
