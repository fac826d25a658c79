package sku

import "strconv"

// Header lists the attribute columns appended to each output row, in order.
var Header = []string{
	"Class",
	"Length",
	"Length UOM",
	"Cuff Style",
	"Color",
	"Size",
	"RFID",
	"EXTRA",
}

// Segments holds the raw substrings a SKU was split into.
type Segments struct {
	Class     string `json:"class"`
	Length    string `json:"length"`
	Cuff      string `json:"cuff,omitempty"`
	Color     string `json:"color"`
	Delimiter string `json:"delimiter"`
	Size      string `json:"size"`
	// Separator is the optional "/" between the size and the RF marker or
	// extra information.
	Separator string `json:"separator,omitempty"`
	RFID      bool   `json:"rfid"`
	Extra     string `json:"extra,omitempty"`
}

// Record is the decoded form of one SKU.
type Record struct {
	SKU       string   `json:"sku"`
	Valid     bool     `json:"valid"`
	Class     int      `json:"class"`
	Length    int      `json:"length"`
	LengthUOM string   `json:"length_uom"`
	CuffStyle string   `json:"cuff_style"`
	Color     string   `json:"color"`
	Size      string   `json:"size"`
	RFID      bool     `json:"rfid"`
	Extra     string   `json:"extra"`
	Segments  Segments `json:"segments"`
}

// Columns returns the attribute values in Header order. Records that failed
// to decode yield blank columns.
func (r Record) Columns() []string {
	if !r.Valid {
		return make([]string, len(Header))
	}
	return []string{
		strconv.Itoa(r.Class),
		strconv.Itoa(r.Length),
		r.LengthUOM,
		r.CuffStyle,
		r.Color,
		r.Size,
		yesNo(r.RFID),
		r.Extra,
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
