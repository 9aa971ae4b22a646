package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrEmptyDataset is matched by EmptyDatasetWarning through errors.Is.
var ErrEmptyDataset = errors.New("filtered window contains no orders")

// MalformedDateError reports a timestamp value that no accepted layout could parse.
type MalformedDateError struct {
	Column string
	Value  string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date in %s: %q", e.Column, e.Value)
}

// IngestionError rejects a ledger row. Row is the 0-based index in the input
// as read, before sorting.
type IngestionError struct {
	Row    int
	Column string
	Err    error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingest row %d (%s): %v", e.Row, e.Column, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }

// InvalidRangeError rejects a date filter whose start falls after its end.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid date range: start %s is after end %s",
		e.Start.Format(time.DateOnly), e.End.Format(time.DateOnly))
}

// BinningError reports a price outside [0, anchor] for spending classification.
type BinningError struct {
	Price  decimal.Decimal
	Anchor decimal.Decimal
}

func (e *BinningError) Error() string {
	return fmt.Sprintf("price %s outside spending range [0, %s]", e.Price, e.Anchor)
}

// EmptyDatasetWarning is attached to a report whose filtered window is empty.
// It is never returned as a run failure.
type EmptyDatasetWarning struct {
	Start time.Time
	End   time.Time
}

func (w *EmptyDatasetWarning) Error() string {
	return fmt.Sprintf("%v (%s .. %s)", ErrEmptyDataset, formatBound(w.Start), formatBound(w.End))
}

func (w *EmptyDatasetWarning) Is(target error) bool { return target == ErrEmptyDataset }

func formatBound(t time.Time) string {
	if t.IsZero() {
		return "open"
	}
	return t.Format(time.DateOnly)
}
