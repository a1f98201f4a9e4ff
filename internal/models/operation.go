package models

import (
	"fmt"
	"strings"
)

// Operation is the side of a trade.
type Operation string

const (
	OperationBuy  Operation = "BUY"
	OperationSell Operation = "SELL"
)

// ParseOperation normalizes a raw operation string. The match is
// case-insensitive; anything outside BUY/SELL is an error.
func ParseOperation(raw string) (Operation, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(OperationBuy):
		return OperationBuy, nil
	case string(OperationSell):
		return OperationSell, nil
	default:
		return "", fmt.Errorf("unknown operation %q", raw)
	}
}

// NormalizeSymbol trims and uppercases an asset symbol. An empty result is
// reported as an error so callers never persist blank symbols.
func NormalizeSymbol(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", fmt.Errorf("empty asset symbol")
	}
	return s, nil
}
