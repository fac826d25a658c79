// Package output provides output formatting for decoded SKUs.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"

	"electriflex-sku/core/sku"
	"electriflex-sku/core/ui"
	"electriflex-sku/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatCSV is the same column layout the pipeline appends
	FormatCSV Format = "csv"
)

// Result pairs a decoded record with its decoding error, if any.
type Result struct {
	Record sku.Record `json:"record"`
	Error  string     `json:"error,omitempty"`
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given results
	Render(w io.Writer, results []Result) error
}

// Registry maps formats to formatters
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry returns a registry with the built-in formatters
func NewRegistry(noColor bool) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(&cliFormatter{noColor: noColor})
	r.Register(jsonFormatter{})
	r.Register(csvFormatter{})
	return r
}

// Register adds a formatter, replacing any with the same format
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format
func (r *Registry) Get(format Format) (Formatter, error) {
	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.Newf(errors.TypeUsage, "unknown output format %q (available: %v)", format, r.Formats())
	}
	return f, nil
}

// Formats lists the registered formats, sorted
func (r *Registry) Formats() []Format {
	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type cliFormatter struct {
	noColor bool
}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) Render(w io.Writer, results []Result) error {
	uw := ui.NewWriter(w, f.noColor)
	table := uw.NewTable(append([]string{"SKU"}, sku.Header...)...)
	for _, r := range results {
		table.AddRow(append([]string{r.Record.SKU}, r.Record.Columns()...)...)
	}
	table.Render()

	for _, r := range results {
		if r.Error != "" {
			uw.Error("%s", r.Error)
		}
	}
	return nil
}

type jsonFormatter struct{}

func (jsonFormatter) Format() Format { return FormatJSON }

func (jsonFormatter) Render(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

type csvFormatter struct{}

func (csvFormatter) Format() Format { return FormatCSV }

func (csvFormatter) Render(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"SKU"}, sku.Header...)); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write(append([]string{r.Record.SKU}, r.Record.Columns()...)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeAll decodes each SKU into a Result, preserving order
func DecodeAll(skus []string) []Result {
	results := make([]Result, 0, len(skus))
	for _, s := range skus {
		rec, err := sku.Decode(s)
		res := Result{Record: rec}
		if err != nil {
			res.Error = err.Error()
		}
		results = append(results, res)
	}
	return results
}
