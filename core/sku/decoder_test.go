package sku

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeKnownSKUs(t *testing.T) {
	tests := []struct {
		sku  string
		want []string
	}{
		{"NG216YB/9", []string{"2", "16", "inch", "Straight Cuff", "Yellow/Black", "9", "No", ""}},
		{"NG216BCRB/10H", []string{"2", "16", "inch", "Bell Cuff", "Red/Black", "10H", "No", ""}},
		{"NG418CRB/12", []string{"4", "18", "inch", "Contour Cuff", "Red/Black", "12", "No", ""}},
		{"NG216BCBYB/10", []string{"2", "16", "inch", "Bell Cuff", "Black/Yellow/Black", "10", "No", ""}},
		{"NG218CBCRB/11/CLIF", []string{"2", "18", "inch", "Contour Bell Cuff", "Red/Black", "11", "No", "CLIF"}},
		{"NG418CRB/12/RF", []string{"4", "18", "inch", "Contour Cuff", "Red/Black", "12", "Yes", ""}},
		{"NG011B-8", []string{"0", "11", "inch", "Straight Cuff", "Black", "8", "No", ""}},
		{"NG09CBL/10", []string{"0", "9", "inch", "Contour Cuff", "Blue", "10", "No", ""}},
		{"NG314BCBLO/9H/RF/CLIF", []string{"3", "14", "inch", "Bell Cuff", "Blue/Orange", "9H", "Yes", "/CLIF"}},
		{"NG216YB/9RF", []string{"2", "16", "inch", "Straight Cuff", "Yellow/Black", "9", "Yes", ""}},
		{"  NG216YB/9 ", []string{"2", "16", "inch", "Straight Cuff", "Yellow/Black", "9", "No", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.sku, func(t *testing.T) {
			rec, err := Decode(tt.sku)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", tt.sku, err)
			}
			if !rec.Valid {
				t.Fatalf("Decode(%q) returned invalid record", tt.sku)
			}
			if diff := cmp.Diff(tt.want, rec.Columns()); diff != "" {
				t.Errorf("columns mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeRecordFields(t *testing.T) {
	rec, err := Decode("NG218CBCRB/11/CLIF")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := Record{
		SKU:       "NG218CBCRB/11/CLIF",
		Valid:     true,
		Class:     2,
		Length:    18,
		LengthUOM: "inch",
		CuffStyle: "Contour Bell Cuff",
		Color:     "Red/Black",
		Size:      "11",
		Extra:     "CLIF",
		Segments: Segments{
			Class:     "2",
			Length:    "18",
			Cuff:      "CBC",
			Color:     "RB",
			Delimiter: "/",
			Size:      "11",
			Separator: "/",
			Extra:     "CLIF",
		},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeInvalidSKUs(t *testing.T) {
	tests := []struct {
		sku    string
		reason string
	}{
		{"XG216YB/9", "missing NG prefix"},
		{"NG", "missing voltage class digit"},
		{"NG2YB/9", "missing length"},
		{"NG216XX/9", "unrecognized cuff style or color code"},
		{"NG216YB9", "missing size delimiter"},
		{"NG216YB/", "missing size"},
		{"00-1000FT-A-BLK-L", "missing NG prefix"},
	}

	for _, tt := range tests {
		t.Run(tt.sku, func(t *testing.T) {
			rec, err := Decode(tt.sku)
			if err == nil {
				t.Fatalf("Decode(%q) succeeded, want error", tt.sku)
			}
			if !stderrors.Is(err, ErrInvalidSKU) {
				t.Errorf("error %v is not ErrInvalidSKU", err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("error %q does not mention %q", err, tt.reason)
			}
			if rec.Valid {
				t.Error("record should be invalid")
			}
			if diff := cmp.Diff(make([]string, len(Header)), rec.Columns()); diff != "" {
				t.Errorf("invalid record columns not blank:\n%s", diff)
			}
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, s := range []string{"", "   ", "\t"} {
		_, err := Decode(s)
		if !stderrors.Is(err, ErrEmptySKU) {
			t.Errorf("Decode(%q) error = %v, want ErrEmptySKU", s, err)
		}
	}
}

func TestDecodeNeverPanics(t *testing.T) {
	inputs := []string{
		"NG", "NG9", "NG99", "NG999", "NG216", "NG216B", "NG216B/",
		"NG216B/H", "NG216B//", "NG216B/9/", "NG216B/9//RF", "ng216yb/9",
		"NG216YB/9\nNG216YB/9", "\xff\xfe", strings.Repeat("NG", 1000),
	}
	for _, s := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Decode(%q) panicked: %v", s, r)
				}
			}()
			_, _ = Decode(s)
		}()
	}
}

func TestColumnsMatchHeaderWidth(t *testing.T) {
	rec, err := Decode("NG216YB/9")
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Columns()) != len(Header) {
		t.Errorf("Columns() has %d values, Header has %d", len(rec.Columns()), len(Header))
	}
}

func TestTablesDriveGrammar(t *testing.T) {
	if got := alternation(Colors); got != "BLO|BYB|BL|RB|YB|B" {
		t.Errorf("color alternation = %q", got)
	}
	if got := alternation(CuffStyles); got != "CBC|BC|C" {
		t.Errorf("cuff alternation = %q", got)
	}
}

func TestNameLookupsFallBackToUnknown(t *testing.T) {
	if got := ColorName("PNK"); got != Unknown {
		t.Errorf("ColorName(PNK) = %q, want %q", got, Unknown)
	}
	if got := CuffStyleName("XC"); got != Unknown {
		t.Errorf("CuffStyleName(XC) = %q, want %q", got, Unknown)
	}
	if got := CuffStyleName(""); got != "Straight Cuff" {
		t.Errorf("CuffStyleName(\"\") = %q", got)
	}
}
