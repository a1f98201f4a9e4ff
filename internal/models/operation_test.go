package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseOperation(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		expected    Operation
		expectError bool
	}{
		{name: "Uppercase buy", raw: "BUY", expected: OperationBuy},
		{name: "Lowercase sell", raw: "sell", expected: OperationSell},
		{name: "Mixed case with spaces", raw: "  Buy ", expected: OperationBuy},
		{name: "Unknown operation", raw: "HOLD", expectError: true},
		{name: "Empty", raw: "", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			op, err := ParseOperation(tc.raw)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, op)
			}
		})
	}
}

func TestNormalizeSymbol(t *testing.T) {
	s, err := NormalizeSymbol(" btc ")
	assert.NoError(t, err)
	assert.Equal(t, "BTC", s)

	_, err = NormalizeSymbol("   ")
	assert.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "RFC3339",
			raw:      "2024-01-01T00:00:00Z",
			expected: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 with sub-seconds",
			raw:      "2024-01-01T12:30:45.5Z",
			expected: time.Date(2024, 1, 1, 12, 30, 45, 500000000, time.UTC),
		},
		{
			name:     "Binance export format",
			raw:      "2024-01-01 12:30:45",
			expected: time.Date(2024, 1, 1, 12, 30, 45, 0, time.UTC),
		},
		{
			name:     "Bare date",
			raw:      "2024-01-01",
			expected: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "Garbage", raw: "not-a-time", expectError: true},
		{name: "Empty", raw: "", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := ParseTimestamp(tc.raw)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tc.expected.Equal(ts), "expected %v, got %v", tc.expected, ts)
			}
		})
	}
}
