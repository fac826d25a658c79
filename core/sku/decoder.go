package sku

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"electriflex-sku/internal/errors"
)

var (
	// ErrEmptySKU is returned for blank SKU values.
	ErrEmptySKU = errors.Parsing("empty SKU", nil)

	// ErrInvalidSKU is returned for SKUs that do not follow the grammar.
	ErrInvalidSKU = errors.Parsing("invalid SKU", nil)
)

var (
	cuffPattern  = "(?:" + alternation(CuffStyles) + ")"
	colorPattern = "(?:" + alternation(Colors) + ")"

	skuPattern = regexp.MustCompile(
		`^` + Prefix +
			`(?P<class>\d)(?P<length>\d{1,2})` +
			`(?P<cuff>` + cuffPattern + `)?` +
			`(?P<color>` + colorPattern + `)` +
			`(?P<delimiter>[/-])(?P<size>[0-9H]+)` +
			`(?P<separator>/?)(?P<rfid>` + RFIDMarker + `)?(?P<extra>.*)`,
	)

	// stages are checked in order to explain why a SKU failed to match.
	stages = []struct {
		re     *regexp.Regexp
		reason string
	}{
		{regexp.MustCompile(`^` + Prefix), "missing " + Prefix + " prefix"},
		{regexp.MustCompile(`^` + Prefix + `\d`), "missing voltage class digit"},
		{regexp.MustCompile(`^` + Prefix + `\d\d`), "missing length"},
		{regexp.MustCompile(`^` + Prefix + `\d\d{1,2}` + cuffPattern + `?` + colorPattern), "unrecognized cuff style or color code"},
		{regexp.MustCompile(`^` + Prefix + `\d\d{1,2}` + cuffPattern + `?` + colorPattern + `[/-]`), "missing size delimiter"},
	}
)

// Decode splits a SKU into its segments and maps each through the code
// tables. Surrounding whitespace is ignored. It never panics; on failure the
// returned Record has Valid == false and blank attributes.
func Decode(raw string) (Record, error) {
	s := strings.TrimSpace(raw)
	rec := Record{SKU: s}
	if s == "" {
		return rec, ErrEmptySKU
	}

	m := skuPattern.FindStringSubmatch(s)
	if m == nil {
		return rec, fmt.Errorf("%w %q: %s", ErrInvalidSKU, s, diagnose(s))
	}

	group := func(name string) string {
		return m[skuPattern.SubexpIndex(name)]
	}

	seg := Segments{
		Class:     group("class"),
		Length:    group("length"),
		Cuff:      group("cuff"),
		Color:     group("color"),
		Delimiter: group("delimiter"),
		Size:      group("size"),
		Separator: group("separator"),
		RFID:      group("rfid") == RFIDMarker,
		Extra:     group("extra"),
	}

	// Both are guaranteed digits by the pattern.
	class, _ := strconv.Atoi(seg.Class)
	length, _ := strconv.Atoi(seg.Length)

	rec.Valid = true
	rec.Class = class
	rec.Length = length
	rec.LengthUOM = LengthUOM
	rec.CuffStyle = CuffStyleName(seg.Cuff)
	rec.Color = ColorName(seg.Color)
	rec.Size = seg.Size
	rec.RFID = seg.RFID
	rec.Extra = seg.Extra
	rec.Segments = seg
	return rec, nil
}

func diagnose(s string) string {
	for _, st := range stages {
		if !st.re.MatchString(s) {
			return st.reason
		}
	}
	return "missing size"
}
