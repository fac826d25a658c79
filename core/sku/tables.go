// Package sku decodes Electriflex glove SKUs into product attributes.
//
// A SKU looks like NG216BCRB/10H/RF: the NG prefix, a voltage class digit,
// a one or two digit length in inches, an optional cuff style code, a color
// code, a "/" or "-" delimiter, the size, an optional RF marker and any
// trailing extra information. Cuff and color codes come from the tables in
// this file; the grammar is generated from them.
package sku

import (
	"regexp"
	"sort"
	"strings"
)

// Fixed parts of the grammar.
const (
	Prefix     = "NG"
	LengthUOM  = "inch"
	RFIDMarker = "RF"

	// Unknown is rendered for codes missing from the tables.
	Unknown = "Unknown"
)

// Code maps a SKU segment code to its human-readable value.
type Code struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CuffStyles lists the known cuff style codes. The empty code is a
// straight cuff.
var CuffStyles = []Code{
	{Code: "", Name: "Straight Cuff"},
	{Code: "BC", Name: "Bell Cuff"},
	{Code: "C", Name: "Contour Cuff"},
	{Code: "CBC", Name: "Contour Bell Cuff"},
}

// Colors lists the known color codes.
var Colors = []Code{
	{Code: "B", Name: "Black"},
	{Code: "RB", Name: "Red/Black"},
	{Code: "YB", Name: "Yellow/Black"},
	{Code: "BYB", Name: "Black/Yellow/Black"},
	{Code: "BL", Name: "Blue"},
	{Code: "BLO", Name: "Blue/Orange"},
}

var (
	cuffByCode  = index(CuffStyles)
	colorByCode = index(Colors)
)

func index(codes []Code) map[string]string {
	m := make(map[string]string, len(codes))
	for _, c := range codes {
		m[c.Code] = c.Name
	}
	return m
}

// CuffStyleName returns the name for a cuff code, or Unknown.
func CuffStyleName(code string) string {
	if name, ok := cuffByCode[code]; ok {
		return name
	}
	return Unknown
}

// ColorName returns the name for a color code, or Unknown.
func ColorName(code string) string {
	if name, ok := colorByCode[code]; ok {
		return name
	}
	return Unknown
}

// alternation renders the non-empty codes as a regexp alternation, longest
// first so that leftmost-first matching prefers CBC over C and BYB over B.
func alternation(codes []Code) string {
	parts := make([]string, 0, len(codes))
	for _, c := range codes {
		if c.Code != "" {
			parts = append(parts, regexp.QuoteMeta(c.Code))
		}
	}
	sort.SliceStable(parts, func(i, j int) bool {
		if len(parts[i]) != len(parts[j]) {
			return len(parts[i]) > len(parts[j])
		}
		return parts[i] < parts[j]
	})
	return strings.Join(parts, "|")
}
