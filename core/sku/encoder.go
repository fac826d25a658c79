package sku

import (
	"strings"

	"electriflex-sku/internal/errors"
)

// Encode assembles a SKU from its segments. An empty Delimiter defaults to
// "/". The result is decoded again and rejected if it does not yield the
// same segments, e.g. an Extra that starts with the RF marker or a size
// digit while no Separator is set.
func Encode(seg Segments) (string, error) {
	if seg.Delimiter == "" {
		seg.Delimiter = "/"
	}
	if _, ok := cuffByCode[seg.Cuff]; !ok {
		return "", errors.Newf(errors.TypeInput, "unknown cuff style code %q", seg.Cuff)
	}
	if _, ok := colorByCode[seg.Color]; !ok {
		return "", errors.Newf(errors.TypeInput, "unknown color code %q", seg.Color)
	}

	var b strings.Builder
	b.WriteString(Prefix)
	b.WriteString(seg.Class)
	b.WriteString(seg.Length)
	b.WriteString(seg.Cuff)
	b.WriteString(seg.Color)
	b.WriteString(seg.Delimiter)
	b.WriteString(seg.Size)
	b.WriteString(seg.Separator)
	if seg.RFID {
		b.WriteString(RFIDMarker)
	}
	b.WriteString(seg.Extra)
	s := b.String()

	rec, err := Decode(s)
	if err != nil {
		return "", errors.Wrapf(errors.TypeInput, err, "segments do not form a valid SKU")
	}
	if rec.Segments != seg {
		return "", errors.Newf(errors.TypeInput, "segments are ambiguous: %q decodes as %+v", s, rec.Segments)
	}
	return s, nil
}

// Canonical re-encodes a decoded record: "/" delimiter, and "/" before the
// RF marker or extra information when either is present.
func Canonical(rec Record) (string, error) {
	if !rec.Valid {
		return "", errors.Newf(errors.TypeInput, "cannot encode invalid SKU %q", rec.SKU)
	}
	seg := rec.Segments
	seg.Delimiter = "/"
	seg.Separator = ""
	if seg.RFID || seg.Extra != "" {
		seg.Separator = "/"
	}
	return Encode(seg)
}
