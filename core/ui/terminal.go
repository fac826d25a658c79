// Package ui - Terminal user interface
// CLI output with colors, tables and the run summary.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors for terminal output
const (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Blue   = lipgloss.Color("4")
	Cyan   = lipgloss.Color("6")
)

// Writer is the UI output destination. Styles are rendered for the color
// profile of out, so pipes and files get plain text.
type Writer struct {
	out       io.Writer
	renderer  *lipgloss.Renderer
	verbosity int
}

// NewWriter creates a UI writer. noColor forces plain output even on a
// color terminal.
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	r := lipgloss.NewRenderer(out)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Writer{
		out:       out,
		renderer:  r,
		verbosity: 1,
	}
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

func (w *Writer) style() lipgloss.Style {
	return w.renderer.NewStyle()
}

func (w *Writer) fg(c lipgloss.Color) lipgloss.Style {
	return w.style().Foreground(c)
}

func (w *Writer) dim(text string) string {
	return w.style().Faint(true).Render(text)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.fg(Cyan).Bold(true).Render("━━━ "+title+" ━━━"))
	w.Println("")
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s %s", w.fg(Green).Render("✓"), msg)
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s %s", w.fg(Yellow).Render("⚠"), msg)
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s %s", w.fg(Red).Render("✗"), msg)
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < 1 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.Println("%s %s", w.fg(Blue).Render("ℹ"), msg)
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := lipgloss.Width(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.style().Bold(true).Render(t.line(t.headers)))

	sep := ""
	for i, w := range t.widths {
		if i > 0 {
			sep += "─┼─"
		}
		sep += strings.Repeat("─", w)
	}
	t.w.Println("%s", sep)

	for _, row := range t.rows {
		t.w.Println("%s", t.line(row))
	}
}

func (t *Table) line(cells []string) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(" │ ")
		}
		b.WriteString(cell)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", t.widths[i]-lipgloss.Width(cell)))
		}
	}
	return b.String()
}

// RunSummary renders the outcome of a CSV run
type RunSummary struct {
	w           *Writer
	Input       string
	Output      string
	Column      string
	Rows        int
	Decoded     int
	Failed      int
	Blank       int
	SuccessRate string
	Duration    time.Duration
	// Failures are "line N: SKU" strings, shown up to MaxFailures.
	Failures    []string
	MaxFailures int
}

// NewRunSummary creates a run summary
func (w *Writer) NewRunSummary() *RunSummary {
	return &RunSummary{w: w, MaxFailures: 10}
}

// Render prints the run summary
func (s *RunSummary) Render() {
	if s.w.verbosity < 1 {
		return
	}
	s.w.Header("SKU Parsing Summary")

	s.w.Println("  Input:   %s", s.Input)
	s.w.Println("  Output:  %s", s.Output)
	s.w.Println("  Column:  %s", s.Column)
	s.w.Println("")

	rateColor := Green
	if s.Failed > 0 {
		rateColor = Yellow
	}
	if s.Rows > 0 && s.Decoded == 0 {
		rateColor = Red
	}
	s.w.Println("%s", s.w.fg(rateColor).Render(fmt.Sprintf("● Decoded %d of %d rows (%s%%)", s.Decoded, s.Rows, s.SuccessRate)))
	s.w.Println("%s", s.w.dim("  Completed in "+formatDuration(s.Duration)))
	s.w.Println("")

	if s.Blank > 0 {
		s.w.Info("%d rows had a blank SKU", s.Blank)
	}
	if s.Failed == 0 {
		s.w.Success("All non-blank SKUs decoded")
		return
	}
	s.w.Warning("%d SKUs could not be decoded", s.Failed)
	for i, f := range s.Failures {
		if i == s.MaxFailures {
			s.w.Println("%s", s.w.dim(fmt.Sprintf("    … and %d more (see log)", len(s.Failures)-i)))
			break
		}
		s.w.Println("    %s", f)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "< 1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
}
