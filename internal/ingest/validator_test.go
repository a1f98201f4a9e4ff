package ingest

import (
	"testing"
	"time"

	"github.com/Suprit166/crypto-trade-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func validRow() Row {
	return Row{
		ColTime:      "2024-01-01T00:00:00Z",
		ColOperation: "BUY",
		ColMarket:    "BTC/USDT",
		ColAmount:    "1",
		ColPrice:     "30000",
	}
}

func TestValidateRow_Valid(t *testing.T) {
	trade, rowErr := ValidateRow(validRow())
	require.Nil(t, rowErr)

	assert.True(t, trade.UTCTime.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, models.OperationBuy, trade.Operation)
	assert.Equal(t, "BTC", trade.BaseAsset)
	assert.Equal(t, "USDT", trade.QuoteAsset)
	assert.True(t, trade.Amount.Equal(decimalFromString(t, "1")))
	assert.True(t, trade.Price.Equal(decimalFromString(t, "30000")))
}

func TestValidateRow_NormalizesCaseAndSpacing(t *testing.T) {
	row := validRow()
	row[ColOperation] = "sell"
	row[ColMarket] = " eth / btc "

	trade, rowErr := ValidateRow(row)
	require.Nil(t, rowErr)
	assert.Equal(t, models.OperationSell, trade.Operation)
	assert.Equal(t, "ETH", trade.BaseAsset)
	assert.Equal(t, "BTC", trade.QuoteAsset)
}

func TestValidateRow_Rejections(t *testing.T) {
	testCases := []struct {
		name           string
		mutate         func(Row)
		expectedReason Reason
		expectedField  string
	}{
		{
			name:           "Unparseable time",
			mutate:         func(r Row) { r[ColTime] = "yesterday" },
			expectedReason: ReasonInvalidTime,
			expectedField:  ColTime,
		},
		{
			name:           "Missing time",
			mutate:         func(r Row) { delete(r, ColTime) },
			expectedReason: ReasonInvalidTime,
			expectedField:  ColTime,
		},
		{
			name:           "Unknown operation",
			mutate:         func(r Row) { r[ColOperation] = "HOLD" },
			expectedReason: ReasonInvalidOperation,
			expectedField:  ColOperation,
		},
		{
			name:           "Market without separator",
			mutate:         func(r Row) { r[ColMarket] = "BTCUSDT" },
			expectedReason: ReasonInvalidMarket,
			expectedField:  ColMarket,
		},
		{
			name:           "Market with too many parts",
			mutate:         func(r Row) { r[ColMarket] = "BTC/USDT/EUR" },
			expectedReason: ReasonInvalidMarket,
			expectedField:  ColMarket,
		},
		{
			name:           "Market with empty quote",
			mutate:         func(r Row) { r[ColMarket] = "BTC/" },
			expectedReason: ReasonInvalidMarket,
			expectedField:  ColMarket,
		},
		{
			name:           "Non-numeric amount",
			mutate:         func(r Row) { r[ColAmount] = "lots" },
			expectedReason: ReasonInvalidAmount,
			expectedField:  ColAmount,
		},
		{
			name:           "Negative amount",
			mutate:         func(r Row) { r[ColAmount] = "-1" },
			expectedReason: ReasonInvalidAmount,
			expectedField:  ColAmount,
		},
		{
			name:           "Non-numeric price",
			mutate:         func(r Row) { r[ColPrice] = "" },
			expectedReason: ReasonInvalidPrice,
			expectedField:  ColPrice,
		},
		{
			name:           "Negative price",
			mutate:         func(r Row) { r[ColPrice] = "-30000" },
			expectedReason: ReasonInvalidPrice,
			expectedField:  ColPrice,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row := validRow()
			tc.mutate(row)

			_, rowErr := ValidateRow(row)
			require.NotNil(t, rowErr)
			assert.Equal(t, tc.expectedReason, rowErr.Reason)
			assert.Equal(t, tc.expectedField, rowErr.Field)
		})
	}
}

func TestValidateRow_ShortCircuitsOnFirstFailure(t *testing.T) {
	// Both time and operation are bad; the time check runs first.
	row := validRow()
	row[ColTime] = "bogus"
	row[ColOperation] = "HOLD"

	_, rowErr := ValidateRow(row)
	require.NotNil(t, rowErr)
	assert.Equal(t, ReasonInvalidTime, rowErr.Reason)
}

func TestValidateRow_Deterministic(t *testing.T) {
	row := validRow()
	first, rowErr := ValidateRow(row)
	require.Nil(t, rowErr)
	second, rowErr := ValidateRow(row)
	require.Nil(t, rowErr)
	assert.Equal(t, first, second)
}
