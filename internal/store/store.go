package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Suprit166/crypto-trade-api/internal/models"
	"gorm.io/gorm"
)

// TradeStore is the narrow persistence contract the ingestion pipeline and
// balance engine depend on. Batch writes are all-or-nothing: either every
// trade in the slice becomes visible to subsequent reads, or none do.
type TradeStore interface {
	// WriteBatch persists the given trades as a single unit.
	WriteBatch(ctx context.Context, trades []models.Trade) error

	// ReadUpTo returns every trade with UTCTime at or before ts. Order is
	// not guaranteed and callers must not rely on it.
	ReadUpTo(ctx context.Context, ts time.Time) ([]models.Trade, error)
}

// GormTradeStore implements TradeStore on top of a gorm connection.
type GormTradeStore struct {
	db *gorm.DB
}

var _ TradeStore = (*GormTradeStore)(nil)

// NewGormTradeStore creates a new gorm-backed trade store.
func NewGormTradeStore(db *gorm.DB) *GormTradeStore {
	return &GormTradeStore{db: db}
}

// WriteBatch inserts all trades inside one transaction so a failure never
// leaves a partially visible batch.
func (s *GormTradeStore) WriteBatch(ctx context.Context, trades []models.Trade) error {
	if len(trades) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&trades).Error
	})
	if err != nil {
		return fmt.Errorf("failed to write trade batch: %w", err)
	}
	return nil
}

// ReadUpTo fetches all trades dated at or before ts. The bound is inclusive:
// a trade occurring exactly at ts counts.
func (s *GormTradeStore) ReadUpTo(ctx context.Context, ts time.Time) ([]models.Trade, error) {
	var trades []models.Trade
	if err := s.db.WithContext(ctx).Where("utc_time <= ?", ts).Find(&trades).Error; err != nil {
		return nil, fmt.Errorf("failed to read trades: %w", err)
	}
	return trades, nil
}
