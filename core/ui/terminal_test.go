package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
)

func TestTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("SKU", "Color")
	table.AddRow("NG216YB/9", "Yellow/Black")
	table.AddRow("NG011B-8", "Black")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	want := []string{
		"SKU       │ Color",
		"──────────┼─────────────",
		"NG216YB/9 │ Yellow/Black",
		"NG011B-8  │ Black",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRunSummary(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	s := w.NewRunSummary()
	s.Input = "input.csv"
	s.Output = "output.csv"
	s.Column = "SKU"
	s.Rows = 14
	s.Decoded = 2
	s.Failed = 12
	s.SuccessRate = "14.3"
	s.Duration = 1500 * time.Millisecond
	for i := 0; i < 12; i++ {
		s.Failures = append(s.Failures, "line N: bad")
	}
	s.Render()

	out := buf.String()
	for _, want := range []string{
		"SKU Parsing Summary",
		"Decoded 2 of 14 rows (14.3%)",
		"Completed in 1s",
		"12 SKUs could not be decoded",
		"and 2 more",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("noColor writer emitted escape codes")
	}
}

func TestQuietSummary(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)
	w.SetVerbosity(0)
	w.NewRunSummary().Render()
	w.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("quiet writer printed %q", buf.String())
	}
}

func TestRunSummaryAllDecoded(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf, true).NewRunSummary()
	s.Rows = 3
	s.Decoded = 2
	s.Blank = 1
	s.SuccessRate = "66.7"
	s.Render()

	out := buf.String()
	for _, want := range []string{"1 rows had a blank SKU", "All non-blank SKUs decoded"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "could not be decoded") {
		t.Errorf("summary reports failures:\n%s", out)
	}
}

func TestWriterPlainWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)
	w.Header("SKU Parsing Summary")
	w.Warning("%d SKUs could not be decoded", 2)
	table := w.NewTable("SKU", "Color")
	table.AddRow("NG216YB/9", "Yellow/Black")
	table.Render()

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("non-terminal writer emitted escape codes: %q", buf.String())
	}
}

func TestWriterStylesOnColorProfile(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)
	w.renderer.SetColorProfile(termenv.ANSI)
	w.Error("%s", "invalid SKU")

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("ANSI profile produced no styling: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "invalid SKU") {
		t.Errorf("message missing: %q", buf.String())
	}
}
