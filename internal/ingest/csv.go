package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
)

// RowSource yields raw rows one at a time. Next returns io.EOF after the
// last row. A finite, bounded source is assumed.
type RowSource interface {
	Next() (Row, error)
}

// CSVRows adapts an encoding/csv stream into a RowSource. The first record
// is the header; every later record is zipped against it into a Row.
type CSVRows struct {
	reader *csv.Reader
	header []string
}

var _ RowSource = (*CSVRows)(nil)

// NewCSVRows creates a lazy row source over r. The header is read on the
// first call to Next.
func NewCSVRows(r io.Reader) *CSVRows {
	cr := csv.NewReader(r)
	// Ragged records are surfaced as rejected rows by validation rather
	// than aborting the whole file.
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &CSVRows{reader: cr}
}

// Next returns the next data row, or io.EOF when the input is exhausted.
func (c *CSVRows) Next() (Row, error) {
	if c.header == nil {
		header, err := c.reader.Read()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV header: %w", err)
		}
		c.header = header
	}

	record, err := c.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV record: %w", err)
	}

	row := make(Row, len(c.header))
	for i, name := range c.header {
		if i < len(record) {
			row[name] = record[i]
		}
	}
	return row, nil
}
