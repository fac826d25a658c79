package pipeline

import (
	"time"

	"github.com/shopspring/decimal"
)

// Failure describes a row whose SKU could not be decoded.
type Failure struct {
	Line   int    `json:"line"`
	SKU    string `json:"sku"`
	Reason string `json:"reason"`
}

// Stats summarizes one pipeline run.
type Stats struct {
	RunID    string        `json:"run_id"`
	Column   string        `json:"column"`
	Rows     int           `json:"rows"`
	Decoded  int           `json:"decoded"`
	Failed   int           `json:"failed"`
	Blank    int           `json:"blank"`
	Failures []Failure     `json:"failures,omitempty"`
	Duration time.Duration `json:"duration"`
}

// SuccessRate is the share of rows that decoded, as a percentage rounded to
// one decimal place. A run without rows reports zero.
func (s *Stats) SuccessRate() decimal.Decimal {
	if s.Rows == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.Decoded)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(s.Rows)), 1)
}

// OK reports whether every non-blank SKU decoded.
func (s *Stats) OK() bool {
	return s.Failed == 0
}
