package ingest

import (
	"strings"

	"github.com/Suprit166/crypto-trade-api/internal/models"
	"github.com/shopspring/decimal"
)

// Expected column names, case-sensitive as received.
const (
	ColTime      = "UTC_Time"
	ColOperation = "Operation"
	ColMarket    = "Market"
	ColAmount    = "Buy/Sell Amount"
	ColPrice     = "Price"
)

// Row is one raw record of named string fields. Extra keys are ignored.
type Row map[string]string

// ValidateRow maps a raw row to a fully populated Trade or a tagged
// rejection. Checks run in a fixed order and stop at the first failure.
// It is pure: same row in, same result out.
func ValidateRow(row Row) (models.Trade, *RowError) {
	utcTime, err := models.ParseTimestamp(row[ColTime])
	if err != nil {
		return models.Trade{}, &RowError{Reason: ReasonInvalidTime, Field: ColTime, Value: row[ColTime]}
	}

	operation, err := models.ParseOperation(row[ColOperation])
	if err != nil {
		return models.Trade{}, &RowError{Reason: ReasonInvalidOperation, Field: ColOperation, Value: row[ColOperation]}
	}

	base, quote, ok := splitMarket(row[ColMarket])
	if !ok {
		return models.Trade{}, &RowError{Reason: ReasonInvalidMarket, Field: ColMarket, Value: row[ColMarket]}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row[ColAmount]))
	if err != nil || amount.IsNegative() {
		return models.Trade{}, &RowError{Reason: ReasonInvalidAmount, Field: ColAmount, Value: row[ColAmount]}
	}

	price, err := decimal.NewFromString(strings.TrimSpace(row[ColPrice]))
	if err != nil || price.IsNegative() {
		return models.Trade{}, &RowError{Reason: ReasonInvalidPrice, Field: ColPrice, Value: row[ColPrice]}
	}

	return models.Trade{
		UTCTime:    utcTime,
		Operation:  operation,
		BaseAsset:  base,
		QuoteAsset: quote,
		Amount:     amount,
		Price:      price,
	}, nil
}

// splitMarket splits a "BASE/QUOTE" market string into its two normalized
// symbols. Exactly one separator and two non-empty parts are required.
func splitMarket(market string) (base, quote string, ok bool) {
	parts := strings.Split(market, "/")
	if len(parts) != 2 {
		return "", "", false
	}
	base, errBase := models.NormalizeSymbol(parts[0])
	quote, errQuote := models.NormalizeSymbol(parts[1])
	if errBase != nil || errQuote != nil {
		return "", "", false
	}
	return base, quote, true
}
