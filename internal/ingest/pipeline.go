package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Suprit166/crypto-trade-api/internal/models"
	"github.com/Suprit166/crypto-trade-api/internal/store"
	"go.uber.org/zap"
)

// RejectedRow is the diagnostic record for one row that failed validation.
type RejectedRow struct {
	Line   int    `json:"line"`
	Reason Reason `json:"reason"`
	Field  string `json:"field"`
	Value  string `json:"value"`
}

// Report summarizes a successful ingestion: how many rows were accepted and
// which rows were rejected, in input order.
type Report struct {
	Accepted int           `json:"accepted"`
	Rejected []RejectedRow `json:"rejected"`
}

// Pipeline validates raw rows and persists the accepted subset as one batch.
type Pipeline struct {
	store  store.TradeStore
	logger *zap.Logger
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(st store.TradeStore, logger *zap.Logger) *Pipeline {
	return &Pipeline{store: st, logger: logger}
}

// Ingest consumes rows to completion, partitioning them into accepted trades
// and rejected rows. A rejected row never aborts its siblings. When at least
// one row is accepted, the whole accepted set is written to the store in a
// single batch; otherwise ErrNoValidRecords is returned and nothing is
// written. A store failure is reported as ErrStoreWrite.
func (p *Pipeline) Ingest(ctx context.Context, rows RowSource) (*Report, error) {
	var (
		accepted []models.Trade
		rejected = make([]RejectedRow, 0)
		line     int
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row source: %w", err)
		}
		line++

		trade, rowErr := ValidateRow(row)
		if rowErr != nil {
			p.logger.Warn("Rejected trade row",
				zap.Int("line", line),
				zap.String("reason", string(rowErr.Reason)),
				zap.String("field", rowErr.Field),
				zap.String("value", rowErr.Value),
			)
			rejected = append(rejected, RejectedRow{
				Line:   line,
				Reason: rowErr.Reason,
				Field:  rowErr.Field,
				Value:  rowErr.Value,
			})
			continue
		}
		accepted = append(accepted, trade)
	}

	if len(accepted) == 0 {
		return nil, ErrNoValidRecords
	}

	if err := p.store.WriteBatch(ctx, accepted); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	p.logger.Info("Ingested trade batch",
		zap.Int("accepted", len(accepted)),
		zap.Int("rejected", len(rejected)),
	)
	return &Report{Accepted: len(accepted), Rejected: rejected}, nil
}
