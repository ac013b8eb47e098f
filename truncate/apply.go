package truncate

import (
	"github.com/randalmurphal/budgetkit/budget"
	"github.com/randalmurphal/budgetkit/tokens"
)

// Apply reduces each section's content to its allocated ceiling and
// returns the reduced content keyed by section name. Sections whose
// content already fits pass through unchanged; sections absent from the
// result are skipped.
//
// The allocation engine only decides how many tokens each section may
// keep; this is the consumer side that performs the actual cut.
func Apply(sections []*budget.Section, result *budget.Result, position Position) map[string]string {
	return ApplyWithCounter(sections, result, position, tokens.CharCounter{})
}

// ApplyWithCounter is Apply with an explicit counter, for callers whose
// allocator uses a non-default counting strategy.
func ApplyWithCounter(sections []*budget.Section, result *budget.Result, position Position, counter tokens.Counter) map[string]string {
	reducer := NewReducer(position).WithCounter(counter)

	reduced := make(map[string]string, len(sections))
	for _, s := range sections {
		ceiling, ok := result.Allocations[s.Name]
		if !ok {
			continue
		}
		content, _ := reducer.Reduce(s.Content, ceiling)
		reduced[s.Name] = content
	}
	return reduced
}
