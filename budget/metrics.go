package budget

import "time"

// DefaultHistoryLimit is the default number of metrics snapshots retained.
const DefaultHistoryLimit = 256

// Metrics is a point-in-time snapshot of the latest allocation.
type Metrics struct {
	Timestamp          time.Time
	TotalBudget        int
	TotalUsed          int
	Overflow           int
	Efficiency         float64
	QualityScore       float64
	SectionCount       int
	CompressionApplied bool
	StrategiesUsed     []string
}

// history is a bounded, oldest-first metrics buffer. Appending past the
// limit drops the oldest entries.
type history struct {
	entries []Metrics
	limit   int
}

func newHistory(limit int) *history {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &history{limit: limit}
}

func (h *history) append(m Metrics) {
	h.entries = append(h.entries, m)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = h.entries[over:]
	}
}

func (h *history) snapshot() []Metrics {
	out := make([]Metrics, len(h.entries))
	copy(out, h.entries)
	return out
}
