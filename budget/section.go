package budget

import (
	"errors"
	"fmt"
)

// ErrUnknownPriority indicates a priority name that is not recognized.
var ErrUnknownPriority = errors.New("unknown priority")

// Priority is the five-level ordinal importance signal used to weight
// competition for budget. Critical is highest.
type Priority int

const (
	PriorityMinimal  Priority = 1
	PriorityLow      Priority = 2
	PriorityNormal   Priority = 3
	PriorityHigh     Priority = 4
	PriorityCritical Priority = 5
)

// String returns the lowercase name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityMinimal:
		return "minimal"
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// ParsePriority parses a priority name.
func ParsePriority(name string) (Priority, error) {
	switch name {
	case "minimal":
		return PriorityMinimal, nil
	case "low":
		return PriorityLow, nil
	case "normal":
		return PriorityNormal, nil
	case "high":
		return PriorityHigh, nil
	case "critical":
		return PriorityCritical, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPriority, name)
}

// Section is a named chunk of candidate content competing for budget.
//
// TokenCount is derived: the allocator computes it from Content on each
// Allocate call unless it is already set. MaxTokens of 0 means no ceiling.
type Section struct {
	Name       string
	Content    string
	Priority   Priority
	TokenCount int
	MinTokens  int
	MaxTokens  int

	// Compressed is set by the allocator when the compress overflow step
	// reduced this section's allocation. CompressionRatio is the surviving
	// fraction of the pre-compression allocation.
	Compressed       bool
	CompressionRatio float64

	Metadata map[string]string
}

// NewSection creates a section with the given name, content, and priority.
func NewSection(name, content string, priority Priority) *Section {
	return &Section{
		Name:     name,
		Content:  content,
		Priority: priority,
	}
}

// capTokens applies the section's MaxTokens ceiling, if set.
func (s *Section) capTokens(n int) int {
	if s.MaxTokens > 0 && n > s.MaxTokens {
		return s.MaxTokens
	}
	return n
}

// clampTokens applies both bounds: at least MinTokens, at most MaxTokens.
func (s *Section) clampTokens(n int) int {
	if n < s.MinTokens {
		n = s.MinTokens
	}
	return s.capTokens(n)
}
