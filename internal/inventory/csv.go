package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"medalert/internal/model"
)

// Column names expected in the upload header.
const (
	ColumnName         = "name"
	ColumnBatch        = "batch"
	ColumnQuantity     = "quantity"
	ColumnMinThreshold = "min_threshold"
	ColumnExpiryDate   = "expiry_date"
)

// RequiredColumns lists the header columns every upload must carry.
var RequiredColumns = []string{
	ColumnName,
	ColumnBatch,
	ColumnQuantity,
	ColumnMinThreshold,
	ColumnExpiryDate,
}

var (
	ErrMissingColumn   = errors.New("missing column")
	ErrMalformedRecord = errors.New("malformed record")
)

// MissingColumnError reports header columns absent from an upload.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column: %s", strings.Join(e.Columns, ", "))
}

func (e *MissingColumnError) Unwrap() error { return ErrMissingColumn }

// MalformedRecordError identifies the offending row of an upload.
// Line is the 1-based line in the CSV, header included.
type MalformedRecordError struct {
	Line   int
	Column string
	Value  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("malformed record at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed record at line %d: column %q value %q %s", e.Line, e.Column, e.Value, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

// ReadCSV decodes an inventory snapshot. A header-only or empty input yields
// zero records and no error.
func ReadCSV(r io.Reader) ([]model.MedicineRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Field count is checked per row against the header so the error can name the line.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []model.MedicineRecord{}, nil
	}
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, &MalformedRecordError{Line: perr.Line, Reason: perr.Err.Error()}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]model.MedicineRecord, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &MalformedRecordError{Line: perr.Line, Reason: perr.Err.Error()}
			}
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(row) != len(header) {
			return nil, &MalformedRecordError{
				Line:   line,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(header), len(row)),
			}
		}
		rec, err := decodeRow(row, idx, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func indexColumns(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}
	return idx, nil
}

func decodeRow(row []string, idx map[string]int, line int) (model.MedicineRecord, error) {
	cell := func(col string) string {
		return strings.TrimSpace(row[idx[col]])
	}

	rec := model.MedicineRecord{
		Name:       cell(ColumnName),
		Batch:      cell(ColumnBatch),
		ExpiryDate: cell(ColumnExpiryDate),
	}
	if rec.Name == "" {
		return rec, &MalformedRecordError{Line: line, Column: ColumnName, Reason: "must not be empty"}
	}

	var err error
	if rec.Quantity, err = parseCount(cell(ColumnQuantity), ColumnQuantity, line); err != nil {
		return rec, err
	}
	if rec.MinThreshold, err = parseCount(cell(ColumnMinThreshold), ColumnMinThreshold, line); err != nil {
		return rec, err
	}
	return rec, nil
}

func parseCount(v, col string, line int) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &MalformedRecordError{Line: line, Column: col, Value: v, Reason: "is not an integer"}
	}
	if n < 0 {
		return 0, &MalformedRecordError{Line: line, Column: col, Value: v, Reason: "must not be negative"}
	}
	return n, nil
}
