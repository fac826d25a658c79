// Package pipeline appends decoded SKU attributes to the rows of a CSV file.
//
// The whole input is read and validated before anything is written: a
// missing SKU column, invalid UTF-8 or a row wider than the header aborts
// the run, while SKUs that fail to decode only leave their attribute
// columns blank.
package pipeline

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"electriflex-sku/core/sku"
	"electriflex-sku/internal/errors"
	"electriflex-sku/internal/logging"
)

// Defaults used when Options fields are empty.
const (
	DefaultSKUColumn  = "SKU"
	DefaultOutputFile = "output.csv"
)

// ContextCheckInterval is how often, in rows, the context is checked.
const ContextCheckInterval = 100

// Options configures a run.
type Options struct {
	// SKUColumn is the header name of the column holding SKUs.
	SKUColumn string

	// OutputFile is the output path used by ProcessFile.
	OutputFile string

	// RunID tags log entries; generated when empty.
	RunID string
}

func (o Options) withDefaults() Options {
	if o.SKUColumn == "" {
		o.SKUColumn = DefaultSKUColumn
	}
	if o.OutputFile == "" {
		o.OutputFile = DefaultOutputFile
	}
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}
	return o
}

// Run reads a CSV from r, decodes the SKU column of every row and writes the
// rows to w with the attribute columns of sku.Header appended. Rows keep
// their input order. Nothing is written to w if a fatal error occurs.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) (*Stats, error) {
	opts = opts.withDefaults()
	start := time.Now()
	log := logging.With(zap.String("run_id", opts.RunID))

	data, err := readUTF8(r)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NotFound("column", opts.SKUColumn).WithContext("reason", "input has no header row")
	}
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "reading CSV header", err)
	}

	col := ColumnIndex(header, opts.SKUColumn)
	if col < 0 {
		return nil, errors.NotFound("column", opts.SKUColumn).WithContext("header", header)
	}
	for _, name := range sku.Header {
		if ColumnIndex(header, name) >= 0 {
			log.Warn("input already has an attribute column; decoded values are appended after it",
				zap.String("column", name))
		}
	}

	stats := &Stats{RunID: opts.RunID, Column: opts.SKUColumn}
	out := [][]string{append(append([]string(nil), header...), sku.Header...)}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.TypeInput, "reading CSV", err)
		}
		line, _ := reader.FieldPos(0)

		if stats.Rows%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, errors.Internal("run cancelled", err)
			}
		}

		if len(row) > len(header) {
			return nil, errors.Newf(errors.TypeInput,
				"line %d has %d fields, header has %d", line, len(row), len(header)).
				WithContext("line", line)
		}
		for len(row) < len(header) {
			row = append(row, "")
		}

		stats.Rows++
		rec, err := sku.Decode(row[col])
		switch {
		case err == nil:
			stats.Decoded++
		case errors.Is(err, sku.ErrEmptySKU):
			stats.Blank++
			log.Debug("blank SKU", zap.Int("line", line))
		default:
			stats.Failed++
			stats.Failures = append(stats.Failures, Failure{Line: line, SKU: rec.SKU, Reason: err.Error()})
			log.Warn("invalid SKU", zap.Int("line", line), zap.String("sku", rec.SKU), zap.Error(err))
		}

		out = append(out, append(row, rec.Columns()...))
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.WriteAll(out); err != nil {
		return nil, errors.IO("writing output", err)
	}

	stats.Duration = time.Since(start)
	log.Info("SKUs parsed",
		zap.Int("rows", stats.Rows),
		zap.Int("decoded", stats.Decoded),
		zap.Int("failed", stats.Failed),
		zap.Int("blank", stats.Blank),
		zap.String("success_rate", stats.SuccessRate().String()),
	)
	return stats, nil
}

// ColumnIndex returns the index of the first header cell equal to name
// after trimming whitespace, or -1.
func ColumnIndex(header []string, name string) int {
	name = strings.TrimSpace(name)
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}
