package ingest

import (
	"errors"
	"fmt"
)

// Reason classifies why a row failed validation.
type Reason string

const (
	ReasonInvalidTime      Reason = "InvalidTime"
	ReasonInvalidOperation Reason = "InvalidOperation"
	ReasonInvalidMarket    Reason = "InvalidMarket"
	ReasonInvalidAmount    Reason = "InvalidAmount"
	ReasonInvalidPrice     Reason = "InvalidPrice"
)

// RowError is a single row's validation failure. It carries the offending
// field and its raw value for diagnostics; it never aborts sibling rows.
type RowError struct {
	Reason Reason
	Field  string
	Value  string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: field %q has invalid value %q", e.Reason, e.Field, e.Value)
}

// Batch-level outcomes of an ingestion call.
var (
	// ErrNoValidRecords means every row was rejected (or the input was
	// empty); nothing was written to the store.
	ErrNoValidRecords = errors.New("no valid trade records")

	// ErrStoreWrite means the accepted batch could not be persisted.
	ErrStoreWrite = errors.New("failed to save trades to the store")
)
