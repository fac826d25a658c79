package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"electriflex-sku/internal/errors"
)

func render(t *testing.T, format Format, skus ...string) string {
	t.Helper()
	f, err := NewRegistry(true).Get(format)
	if err != nil {
		t.Fatalf("Get(%s): %v", format, err)
	}
	var buf bytes.Buffer
	if err := f.Render(&buf, DecodeAll(skus)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestCSVFormatter(t *testing.T) {
	out := render(t, FormatCSV, "NG216BCRB/10H", "bogus")

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not CSV: %v", err)
	}
	want := [][]string{
		{"SKU", "Class", "Length", "Length UOM", "Cuff Style", "Color", "Size", "RFID", "EXTRA"},
		{"NG216BCRB/10H", "2", "16", "inch", "Bell Cuff", "Red/Black", "10H", "No", ""},
		{"bogus", "", "", "", "", "", "", "", ""},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONFormatter(t *testing.T) {
	out := render(t, FormatJSON, "NG418CRB/12/RF", "")

	var results []Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if r := results[0].Record; !r.Valid || !r.RFID || r.CuffStyle != "Contour Cuff" {
		t.Errorf("unexpected first record: %+v", r)
	}
	if !strings.Contains(results[1].Error, "empty SKU") {
		t.Errorf("second result error = %q", results[1].Error)
	}
}

func TestCLIFormatter(t *testing.T) {
	out := render(t, FormatCLI, "NG216YB/9", "XX")

	for _, want := range []string{"Yellow/Black", "Straight Cuff", "invalid SKU \"XX\""} {
		if !strings.Contains(out, want) {
			t.Errorf("cli output missing %q:\n%s", want, out)
		}
	}
}

func TestRegistryUnknownFormat(t *testing.T) {
	_, err := NewRegistry(false).Get("xml")
	if !errors.IsType(err, errors.TypeUsage) {
		t.Errorf("Get(xml) error = %v, want USAGE_ERROR", err)
	}
	if diff := cmp.Diff([]Format{FormatCLI, FormatCSV, FormatJSON}, NewRegistry(false).Formats()); diff != "" {
		t.Errorf("formats mismatch:\n%s", diff)
	}
}
