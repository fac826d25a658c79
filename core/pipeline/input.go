package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"electriflex-sku/internal/errors"
)

// readUTF8 reads all of r, rejects invalid UTF-8 and strips a leading BOM.
func readUTF8(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.IO("reading input", err)
	}

	if off := invalidOffset(data); off >= 0 {
		line := bytes.Count(data[:off], []byte("\n")) + 1
		return nil, errors.Encoding(fmt.Sprintf("input is not valid UTF-8 (byte %d, line %d)", off, line)).
			WithContext("offset", off).
			WithContext("line", line)
	}

	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return nil, errors.Wrap(errors.TypeEncoding, "decoding input", err)
	}
	return out, nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence,
// or -1.
func invalidOffset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
