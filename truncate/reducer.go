package truncate

import (
	"strings"

	"github.com/randalmurphal/budgetkit/budget"
	"github.com/randalmurphal/budgetkit/tokens"
)

// Position selects which part of the content is removed when a section
// must shrink to its allocated ceiling.
type Position int

const (
	// End removes content from the end (default).
	End Position = iota

	// Start removes content from the start.
	Start

	// Middle removes content from the middle, keeping start and end.
	Middle
)

// Markers inserted where content was removed.
const (
	DefaultEndMarker    = "..."
	DefaultStartMarker  = "..."
	DefaultMiddleMarker = "\n...[content truncated]...\n"
)

// PositionFor maps the budget config's advisory truncate variant to a
// reduction position. The allocation engine treats the variants as one
// algorithm; the position only matters here, on the consumer side.
func PositionFor(s budget.OverflowStrategy) Position {
	switch s {
	case budget.OverflowTruncateStart:
		return Start
	case budget.OverflowTruncateMiddle:
		return Middle
	default:
		return End
	}
}

// Reducer cuts section content down to an allocated token ceiling.
type Reducer struct {
	counter  tokens.Counter
	position Position
	marker   string
}

// NewReducer creates a reducer for the given position with the default
// character-based counter.
func NewReducer(position Position) *Reducer {
	marker := DefaultEndMarker
	if position == Middle {
		marker = DefaultMiddleMarker
	}
	return &Reducer{
		counter:  tokens.CharCounter{},
		position: position,
		marker:   marker,
	}
}

// WithCounter sets a custom token counter. Use the same counting strategy
// as the allocator so ceilings and measurements agree.
func (r *Reducer) WithCounter(counter tokens.Counter) *Reducer {
	r.counter = counter
	return r
}

// WithMarker sets a custom marker for removed content.
func (r *Reducer) WithMarker(marker string) *Reducer {
	r.marker = marker
	return r
}

// Reduce cuts text to fit within maxTokens. Returns the reduced text and
// whether any content was removed.
func (r *Reducer) Reduce(text string, maxTokens int) (string, bool) {
	if r.counter.FitsInLimit(text, maxTokens) {
		return text, false
	}

	switch r.position {
	case Start:
		return r.cutStart(text, maxTokens), true
	case Middle:
		return r.cutMiddle(text, maxTokens), true
	default:
		return r.cutEnd(text, maxTokens), true
	}
}

// cutEnd keeps the longest prefix that fits, then appends the marker.
func (r *Reducer) cutEnd(text string, maxTokens int) string {
	target := maxTokens - r.counter.Count(r.marker)
	if target <= 0 {
		return r.marker
	}

	runes := []rune(text)
	keep := r.fittingPrefix(runes, target)
	if keep == 0 {
		return r.marker
	}
	return string(runes[:keep]) + r.marker
}

// cutStart keeps the longest suffix that fits, prefixed by the marker.
func (r *Reducer) cutStart(text string, maxTokens int) string {
	target := maxTokens - r.counter.Count(r.marker)
	if target <= 0 {
		return r.marker
	}

	runes := []rune(text)

	// Binary search for the earliest start that still fits.
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high) / 2
		if r.counter.FitsInLimit(string(runes[mid:]), target) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	if low >= len(runes) {
		return r.marker
	}
	return r.marker + string(runes[low:])
}

// cutMiddle keeps a prefix and suffix of roughly equal token weight with
// the marker between them.
func (r *Reducer) cutMiddle(text string, maxTokens int) string {
	target := maxTokens - r.counter.Count(r.marker)
	if target <= 0 {
		return r.marker
	}

	runes := []rune(text)
	half := target / 2

	keepStart := r.fittingPrefix(runes, half)
	tailStart := len(runes) - keepStart
	if tailStart < keepStart {
		tailStart = keepStart
	}

	var sb strings.Builder
	sb.WriteString(string(runes[:keepStart]))
	sb.WriteString(r.marker)
	if tailStart < len(runes) {
		sb.WriteString(string(runes[tailStart:]))
	}
	return sb.String()
}

// fittingPrefix binary-searches for the longest prefix within maxTokens.
func (r *Reducer) fittingPrefix(runes []rune, maxTokens int) int {
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high + 1) / 2
		if r.counter.FitsInLimit(string(runes[:mid]), maxTokens) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}
