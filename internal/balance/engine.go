package balance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Suprit166/crypto-trade-api/internal/models"
	"github.com/Suprit166/crypto-trade-api/internal/store"
	"github.com/shopspring/decimal"
)

// ErrStoreRead means the trade history could not be retrieved.
var ErrStoreRead = errors.New("failed to read trades from the store")

// Engine reconstructs per-asset balances by replaying trade history.
type Engine struct {
	store store.TradeStore
}

// NewEngine creates a new balance engine.
func NewEngine(st store.TradeStore) *Engine {
	return &Engine{store: st}
}

// AsOf returns the net signed balance per base asset over every trade dated
// at or before ts. The fold is order-independent: the result is a pure
// function of the set of trades, not of retrieval order. Assets whose total
// is exactly zero are omitted.
func (e *Engine) AsOf(ctx context.Context, ts time.Time) (map[string]decimal.Decimal, error) {
	trades, err := e.store.ReadUpTo(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreRead, err)
	}

	balances := make(map[string]decimal.Decimal)
	for _, trade := range trades {
		balances = apply(balances, trade)
	}
	return pruneZero(balances), nil
}

// apply is one reducer step: BUY adds the amount to the base asset, SELL
// subtracts it. Selling beyond recorded history is permitted and yields a
// negative balance; the engine does not enforce solvency.
func apply(balances map[string]decimal.Decimal, trade models.Trade) map[string]decimal.Decimal {
	switch trade.Operation {
	case models.OperationBuy:
		balances[trade.BaseAsset] = balances[trade.BaseAsset].Add(trade.Amount)
	case models.OperationSell:
		balances[trade.BaseAsset] = balances[trade.BaseAsset].Sub(trade.Amount)
	}
	return balances
}

// pruneZero drops every asset whose accumulated total is exactly zero.
func pruneZero(balances map[string]decimal.Decimal) map[string]decimal.Decimal {
	for asset, total := range balances {
		if total.IsZero() {
			delete(balances, asset)
		}
	}
	return balances
}
